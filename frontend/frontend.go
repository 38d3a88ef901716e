/*
File    : viperc/frontend/frontend.go
Package : frontend
*/

// Package frontend is the single entry point tying the lexer, parser,
// and compiler context together for one source file. It exists as its
// own package (rather than living in compiler) because the parser
// already depends on compiler.Context; folding lexer->parser wiring into
// compiler itself would create an import cycle.
package frontend

import (
	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/compiler"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/parser"
)

// Result bundles the parsed declaration list with the Context it was
// built against (carrying the type registry, global tables, and
// diagnostics a caller needs to render or further inspect the unit) and
// the raw token stream, kept around for --dump-tokens.
type Result struct {
	Decls  []ast.TopLevel
	Tokens []lexer.Token
	Ctx    *compiler.Context
}

// Compile lexes and parses one source file in a single call, giving the
// CLI and REPL a single entry point instead of wiring the lexer and
// parser together themselves at every call site.
func Compile(file, src string) *Result {
	return CompileWithWarnings(file, src, nil)
}

// CompileWithWarnings is Compile, but first applies a set of named warning
// toggles (from `-W<name>`/`-Wno-<name>`) to the freshly created Context's
// Diagnostics before lexing starts, so a warning raised on the very first
// token already honors them.
func CompileWithWarnings(file, src string, warnings map[string]bool) *Result {
	ctx := compiler.New(file, src)
	for name, enabled := range warnings {
		ctx.Diags.SetWarning(name, enabled)
	}

	// The lexer is driven one token at a time by the parser (lx.Next, not
	// lx.Lex) rather than scanned fully up front: a struct or class the
	// parser has just registered needs to be recognized as a Type token
	// later in this same file, which only works if the registry already
	// holds it by the time the lexer reaches that later use.
	lx := lexer.New(file, src, ctx.Types, ctx.Diags)

	p := parser.New(ctx, lx)
	decls := p.Parse()
	lx.ScanInvalidTokens()

	return &Result{Decls: decls, Tokens: p.Tokens(), Ctx: ctx}
}
