/*
File    : viperc/ast/toplevel.go
Package : ast
*/

package ast

import (
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/emitter"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// Function is `T name(params) { body }` or the shorthand single-statement
// body `T name(params) = stmt`; Body holds the *CompoundStmt of the braced
// form or the one statement after `=` (e.g. a *ReturnStmt or an
// *ExprStmt), or is nil for a forward
// declaration (`let T name(params);`). Function owns the scope it
// introduces for its parameters and body. Besides appearing at the top
// level, a Function may also be declared as a local statement (the
// grammar makes no distinction, per spec.md §4.G's primary dispatch),
// hence it implements both TopLevel and Stmt.
type Function struct {
	Span       diag.Span
	ReturnType *types.Type
	Name       string
	Params     []types.Field
	Body       Stmt
	Scope      *scope.Scope
}

func (n *Function) Pos() diag.Span { return n.Span }
func (*Function) topLevelNode()    {}
func (*Function) stmtNode()        {}

func (n *Function) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// ExprStmt wraps a bare expression used as a statement: an assignment
// (`this.v = n;`), a call (`puts(s);`), or a single-expression function
// body (`= this.v = n;`). Not one of the tagged Statement variants spec.md
// §3 names explicitly, but required by the grammar's own primary dispatch
// falling through to ParseExpression for anything it doesn't otherwise
// recognize — every Expr needs a Stmt-shaped home to live in a body.
type ExprStmt struct {
	Span diag.Span
	Expr Expr
}

func (n *ExprStmt) Pos() diag.Span { return n.Span }
func (*ExprStmt) stmtNode()        {}

func (n *ExprStmt) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// ExternFunction is `extern T name(params);` — registers a signature in
// the global function table with no body.
type ExternFunction struct {
	Span       diag.Span
	ReturnType *types.Type
	Name       string
	Params     []types.Field
}

func (n *ExternFunction) Pos() diag.Span { return n.Span }
func (*ExternFunction) topLevelNode()    {}
func (*ExternFunction) stmtNode()        {}

func (n *ExternFunction) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// ImportStmt is `import T name(params);` — the sole cross-file mechanism
// this front-end supports (module systems beyond this are an explicit
// non-goal). Like ExternFunction, it registers a body-less signature.
type ImportStmt struct {
	Span       diag.Span
	Name       string
	ReturnType *types.Type
	Params     []types.Field
}

func (n *ImportStmt) Pos() diag.Span { return n.Span }
func (*ImportStmt) topLevelNode()    {}
func (*ImportStmt) stmtNode()        {}

func (n *ImportStmt) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// StructDecl is `struct Name { field; ... };`, already fully registered
// in the type registry by the time this node is constructed; the node is
// a thin wrapper around the resulting handle so the declaration still has
// a place in the declaration list it was parsed from.
type StructDecl struct {
	Span       diag.Span
	StructType *types.Type
}

func (n *StructDecl) Pos() diag.Span { return n.Span }
func (*StructDecl) topLevelNode()    {}
func (*StructDecl) stmtNode()        {}

func (n *StructDecl) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// MethodDecl is one constructor or method inside a ClassDefinition.
// IsConstructor is true when Name equals the owning class's name and the
// member had no declared return type; ReturnType is nil in that case. A
// method declared without a return type also has a nil ReturnType.
type MethodDecl struct {
	Span          diag.Span
	Name          string
	ReturnType    *types.Type
	Params        []types.Field
	IsConstructor bool
	ThisSymbol    *scope.Symbol
	Body          Stmt
	Scope         *scope.Scope
}

func (n *MethodDecl) Pos() diag.Span { return n.Span }

func (n *MethodDecl) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// ClassDefinition is `class Name { member; ... };`. Fields mirrors the
// struct type's field list (kept here too so the definition can be
// rendered/dumped without chasing back through the type registry);
// Methods carries full bodies, unlike the slim types.MethodSignature the
// registry stores for cross-package lookups.
type ClassDefinition struct {
	Span       diag.Span
	Name       string
	StructType *types.Type
	Fields     []types.Field
	Methods    []*MethodDecl
}

func (n *ClassDefinition) Pos() diag.Span { return n.Span }
func (*ClassDefinition) topLevelNode()    {}
func (*ClassDefinition) stmtNode()        {}

func (n *ClassDefinition) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

var (
	_ TopLevel = (*Function)(nil)
	_ TopLevel = (*ExternFunction)(nil)
	_ TopLevel = (*ImportStmt)(nil)
	_ TopLevel = (*StructDecl)(nil)
	_ TopLevel = (*ClassDefinition)(nil)
	_ TopLevel = (*VariableDecl)(nil)

	_ Stmt = (*Function)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*ExternFunction)(nil)
	_ Stmt = (*ImportStmt)(nil)
	_ Stmt = (*StructDecl)(nil)
	_ Stmt = (*ClassDefinition)(nil)
)
