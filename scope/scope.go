/*
File    : viperc/scope/scope.go
Package : scope
*/

// Package scope implements the lexical scope chain and the two flat
// global tables (functions, global variables) that sit outside it.
// Scopes nest: a lookup that misses locally walks Parent until it either
// finds a binding or runs out of scopes.
package scope

import "github.com/viperlang/viperc/types"

// Symbol is a named, typed binding visible in some Scope.
type Symbol struct {
	Name string
	Type *types.Type

	// IsParam marks a symbol introduced as a function or method
	// parameter (including the synthetic "this" receiver), distinguishing
	// it from an ordinary local declared with `let`.
	IsParam bool
}

// Scope is one node in the lexical scope tree. The root scope of a
// function body has Parent == nil; nested compound statements chain off
// their enclosing scope. Scopes are owned by the AST node that introduces
// them (a Function or a CompoundStmt), not by a separate scope stack.
type Scope struct {
	Parent  *Scope
	Symbols map[string]*Symbol
}

// New creates a child scope of parent. Pass nil for a function's top
// scope.
func New(parent *Scope) *Scope {
	return &Scope{Parent: parent, Symbols: make(map[string]*Symbol)}
}

// Declare binds name to sym in this scope. Redeclaring a name already
// bound in the SAME scope is an error (shadowing an outer scope's
// binding is allowed and is not an error); the caller is expected to
// check Declare's return value and report a diagnostic on failure rather
// than this package doing so itself, keeping scope free of any
// dependency on diag.
func (s *Scope) Declare(name string, typ *types.Type) (*Symbol, bool) {
	if _, exists := s.Symbols[name]; exists {
		return nil, false
	}
	sym := &Symbol{Name: name, Type: typ}
	s.Symbols[name] = sym
	return sym, true
}

// DeclareParam is Declare but marks the resulting Symbol as a parameter.
func (s *Scope) DeclareParam(name string, typ *types.Type) (*Symbol, bool) {
	sym, ok := s.Declare(name, typ)
	if ok {
		sym.IsParam = true
	}
	return sym, ok
}

// Find walks this scope and its ancestors, returning the nearest binding
// for name.
func (s *Scope) Find(name string) (*Symbol, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.Symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// FindLocal looks up name only in this scope, without walking Parent.
// Used by the parser to detect same-scope redeclaration.
func (s *Scope) FindLocal(name string) (*Symbol, bool) {
	sym, ok := s.Symbols[name]
	return sym, ok
}

// FunctionSymbol is an entry in the global function table: a declared or
// externally-imported function's signature. Body statements are not
// stored here — they live on the owning ast.Function node, keeping
// scope free of any dependency on ast.
type FunctionSymbol struct {
	Name       string
	ReturnType *types.Type
	Params     []types.Field
	// Extern marks a function declared via `extern`/`import` with no
	// body — the emitter must not expect one.
	Extern bool
}

// GlobalVariable is an entry in the global variable table.
type GlobalVariable struct {
	Name string
	Type *types.Type
}

// GlobalTable is the pair of flat tables (spec.md §3: "separate from the
// scope chain") holding every top-level function and global variable for
// one compilation unit.
type GlobalTable struct {
	Functions map[string]*FunctionSymbol
	Variables map[string]*GlobalVariable
}

// NewGlobalTable returns an empty GlobalTable.
func NewGlobalTable() *GlobalTable {
	return &GlobalTable{
		Functions: make(map[string]*FunctionSymbol),
		Variables: make(map[string]*GlobalVariable),
	}
}

// DeclareFunction registers a function signature. Redeclaring an existing
// name is an error (returns false); the caller reports the diagnostic.
func (g *GlobalTable) DeclareFunction(fn *FunctionSymbol) bool {
	if _, exists := g.Functions[fn.Name]; exists {
		return false
	}
	g.Functions[fn.Name] = fn
	return true
}

// DeclareVariable registers a global variable. Redeclaring an existing
// name is an error (returns false).
func (g *GlobalTable) DeclareVariable(v *GlobalVariable) bool {
	if _, exists := g.Variables[v.Name]; exists {
		return false
	}
	g.Variables[v.Name] = v
	return true
}

// LookupFunction finds a registered function by name.
func (g *GlobalTable) LookupFunction(name string) (*FunctionSymbol, bool) {
	fn, ok := g.Functions[name]
	return fn, ok
}

// LookupVariable finds a registered global variable by name.
func (g *GlobalTable) LookupVariable(name string) (*GlobalVariable, bool) {
	v, ok := g.Variables[name]
	return v, ok
}
