/*
File    : viperc/compiler/context.go
Package : compiler
*/

// Package compiler wires the type registry, global tables, and
// diagnostics together into one per-compilation-unit Context. Driving the
// lexer and parser over a source file is done by package frontend, which
// builds its Context with New. This replaces the process-wide mutable singletons
// the design notes flag as a smell: every compilation gets its own
// Context, so nothing prevents a future version from compiling several
// units concurrently, one goroutine per Context.
package compiler

import (
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// Context bundles everything a lexer or parser run needs, scoped to one
// source file. Nothing here is shared across Contexts.
type Context struct {
	File    string
	Types   *types.Registry
	Globals *scope.GlobalTable
	Diags   *diag.Diagnostics
}

// New creates a Context with a freshly initialized type registry
// (built-in primitives already seeded), empty global tables, and a
// Diagnostics ready to receive reports for the given file/source pair.
func New(file, src string) *Context {
	reg := types.NewRegistry()
	reg.Init()

	d := diag.New()
	d.SetText(file, src)

	return &Context{
		File:    file,
		Types:   reg,
		Globals: scope.NewGlobalTable(),
		Diags:   d,
	}
}
