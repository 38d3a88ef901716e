/*
File    : viperc/ast/stmt.go
Package : ast
*/

package ast

import (
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/emitter"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// ReturnStmt returns from the enclosing function/method body. Value is
// nil for a body-less `return;`. ReturnType captures the parser's
// current-return-type slot at the point this statement was parsed, so a
// later type-check pass can validate Value against it without
// re-walking scope (spec.md §4.G "Return-type tracking").
type ReturnStmt struct {
	Span       diag.Span
	Value      Expr
	ReturnType *types.Type
}

func (n *ReturnStmt) Pos() diag.Span { return n.Span }
func (*ReturnStmt) stmtNode()        {}

func (n *ReturnStmt) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// VariableDecl declares a local or global variable: `T name [= init];`.
// It satisfies both Stmt (a local declaration inside a body) and
// TopLevel (a bare top-level `let`/`global` declaration), since Viper
// allows both forms with the same shape.
type VariableDecl struct {
	Span    diag.Span
	VarType *types.Type
	Name    string
	Init    Expr // nil when the declaration has no initializer

	// Symbol is set when this declares a local (non-nil Scope available
	// at parse time); Global is set instead for a top-level declaration.
	Symbol *scope.Symbol
	Global *scope.GlobalVariable
}

func (n *VariableDecl) Pos() diag.Span { return n.Span }
func (*VariableDecl) stmtNode()        {}
func (*VariableDecl) topLevelNode()    {}

func (n *VariableDecl) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// CompoundStmt is a `{ ... }` block. It owns the Scope introduced for its
// body, per spec.md §3 lifecycle ("Scopes are owned by the AST node that
// introduces them").
type CompoundStmt struct {
	Span     diag.Span
	Children []Stmt
	Scope    *scope.Scope
}

func (n *CompoundStmt) Pos() diag.Span { return n.Span }
func (*CompoundStmt) stmtNode()        {}

func (n *CompoundStmt) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// IfStmt is `if (cond) then [else else_]`. Else is nil when absent.
type IfStmt struct {
	Span diag.Span
	Cond Expr
	Then Stmt
	Else Stmt
}

func (n *IfStmt) Pos() diag.Span { return n.Span }
func (*IfStmt) stmtNode()        {}

func (n *IfStmt) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Span diag.Span
	Cond Expr
	Body Stmt
}

func (n *WhileStmt) Pos() diag.Span { return n.Span }
func (*WhileStmt) stmtNode()        {}

func (n *WhileStmt) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

var (
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*VariableDecl)(nil)
	_ Stmt = (*CompoundStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
)
