/*
File    : viperc/emitter/emitter.go
Package : emitter
*/

// Package emitter defines the narrow, black-box contract the AST depends
// on for code generation. The front-end never generates machine code or
// IR itself — every AST node variant forwards to an Emitter and hands
// back whatever opaque Value it returns.
//
// The node parameter is typed any rather than ast.Node so this package
// has no import-time dependency on ast: ast imports emitter (to call it),
// not the other way around.
package emitter

import "github.com/viperlang/viperc/scope"

// Value is an opaque back-end handle produced by a successful emit. A nil
// Value signals a failure that has already been reported through
// diagnostics by the Emitter implementation.
type Value any

// Builder and Module are opaque back-end handles threaded through Emit
// calls. The front-end never inspects their contents.
type Builder any
type Module any

// Emitter is implemented by the code-generation back-end. The front-end
// ships no real implementation of this interface — only Null, a
// reference/no-op implementation that no other package in this module
// calls.
type Emitter interface {
	// Emit lowers one AST node (typed any to avoid an ast import cycle)
	// against the given builder, module, and lexical scope, returning an
	// opaque Value or nil on failure.
	Emit(node any, builder Builder, module Module, sc *scope.Scope) Value

	// SetStorage records the back-end storage handle for a local symbol,
	// once it has been allocated during codegen.
	SetStorage(sym *scope.Symbol, handle any)

	// GetStorage retrieves a previously recorded storage handle.
	GetStorage(sym *scope.Symbol) (any, bool)
}
