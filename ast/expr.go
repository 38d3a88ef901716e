/*
File    : viperc/ast/expr.go
Package : ast
*/

package ast

import (
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/emitter"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// IntegerLiteral is a decimal integer constant.
type IntegerLiteral struct {
	Span  diag.Span
	Value int64
	Type  *types.Type
}

func (n *IntegerLiteral) Pos() diag.Span            { return n.Span }
func (n *IntegerLiteral) ResolvedType() *types.Type { return n.Type }

func (n *IntegerLiteral) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// StringLiteral is a decoded (escapes already applied) string constant.
type StringLiteral struct {
	Span  diag.Span
	Value string
	Type  *types.Type
}

func (n *StringLiteral) Pos() diag.Span            { return n.Span }
func (n *StringLiteral) ResolvedType() *types.Type { return n.Type }

func (n *StringLiteral) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// NullptrLiteral is a null-pointer literal. Its Type is always a Pointer.
// The parser does not build this node; `new T` parses to a UnaryExpr.
type NullptrLiteral struct {
	Span diag.Span
	Type *types.Type
}

func (n *NullptrLiteral) Pos() diag.Span            { return n.Span }
func (n *NullptrLiteral) ResolvedType() *types.Type { return n.Type }

func (n *NullptrLiteral) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Span  diag.Span
	Value bool
	Type  *types.Type
}

func (n *BoolLiteral) Pos() diag.Span            { return n.Span }
func (n *BoolLiteral) ResolvedType() *types.Type { return n.Type }

func (n *BoolLiteral) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// Variable is a name reference, resolved at construction time. Symbol is
// set only when the name resolved to a local (scope) binding; it is nil
// for a global variable, a global function (Type is then the function's
// return type), or an undeclared name (Type is void). Type is always set,
// so invariant 1 holds.
type Variable struct {
	Span   diag.Span
	Name   string
	Symbol *scope.Symbol
	Type   *types.Type
}

func (n *Variable) Pos() diag.Span            { return n.Span }
func (n *Variable) ResolvedType() *types.Type { return n.Type }

func (n *Variable) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// UnaryExpr applies a prefix operator: `!`, `-`, `#` (dereference), `@`
// (address-of), or `new` (heap allocation).
type UnaryExpr struct {
	Span    diag.Span
	Op      lexer.Kind
	Operand Expr
	Type    *types.Type
}

func (n *UnaryExpr) Pos() diag.Span            { return n.Span }
func (n *UnaryExpr) ResolvedType() *types.Type { return n.Type }

func (n *UnaryExpr) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// BinaryExpr applies an infix operator between two operands.
type BinaryExpr struct {
	Span diag.Span
	LHS  Expr
	Op   lexer.Kind
	RHS  Expr
	Type *types.Type
}

func (n *BinaryExpr) Pos() diag.Span            { return n.Span }
func (n *BinaryExpr) ResolvedType() *types.Type { return n.Type }

func (n *BinaryExpr) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// CallExpr invokes Callee with Args. When Callee is a MemberExpr this is a
// method call; resolving which method binds is left to a later type-check
// pass (spec's call-site validation is explicitly out of scope — see the
// comment on Emit below).
type CallExpr struct {
	Span   diag.Span
	Callee Expr
	Args   []Expr
	Type   *types.Type
}

func (n *CallExpr) Pos() diag.Span            { return n.Span }
func (n *CallExpr) ResolvedType() *types.Type { return n.Type }

// Args are not checked against the callee's parameter list, neither when
// the parser builds this node nor here; this is the hook where such a
// check attaches.
func (n *CallExpr) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// IndexExpr is `array[index]`.
type IndexExpr struct {
	Span  diag.Span
	Array Expr
	Index Expr
	Type  *types.Type
}

func (n *IndexExpr) Pos() diag.Span            { return n.Span }
func (n *IndexExpr) ResolvedType() *types.Type { return n.Type }

func (n *IndexExpr) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

// MemberExpr is `object.field`. FieldName is a bare name, resolved
// against Object's struct type when that type is known at parse time.
type MemberExpr struct {
	Span      diag.Span
	Object    Expr
	FieldName string
	Type      *types.Type
}

func (n *MemberExpr) Pos() diag.Span            { return n.Span }
func (n *MemberExpr) ResolvedType() *types.Type { return n.Type }

func (n *MemberExpr) Emit(e emitter.Emitter, b emitter.Builder, m emitter.Module, sc *scope.Scope) emitter.Value {
	return e.Emit(n, b, m, sc)
}

var (
	_ Expr = (*IntegerLiteral)(nil)
	_ Expr = (*StringLiteral)(nil)
	_ Expr = (*NullptrLiteral)(nil)
	_ Expr = (*BoolLiteral)(nil)
	_ Expr = (*Variable)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*IndexExpr)(nil)
	_ Expr = (*MemberExpr)(nil)
)
