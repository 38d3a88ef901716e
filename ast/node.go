/*
File    : viperc/ast/node.go
Package : ast
*/

// Package ast defines the typed tree produced by the parser: expression,
// statement, and top-level declaration nodes, each carrying its source
// span and — for expressions — its resolved Type. Every node variant
// forwards code generation to an external emitter.Emitter rather than
// generating anything itself.
package ast

import (
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/emitter"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// Node is implemented by every AST variant. Pos returns the node's source
// span; every concrete type stores it in an exported Span field so the
// parser can set it directly in a struct literal.
type Node interface {
	Pos() diag.Span
	// Emit lowers this node via e, returning whatever opaque Value e
	// produces. The front-end never generates code itself — this always
	// forwards straight to e.Emit.
	Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value
}

// Expr is implemented by every expression node. ResolvedType is non-nil
// on every Expr returned from a successful parse (invariant 1).
type Expr interface {
	Node
	ResolvedType() *types.Type
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// TopLevel is implemented by every node that can appear directly in a
// compilation unit's top-level declaration list.
type TopLevel interface {
	Node
	topLevelNode()
}
