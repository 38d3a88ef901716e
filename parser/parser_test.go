/*
File    : viperc/parser/parser_test.go
Package : parser
*/

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/frontend"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/types"
)

func compile(t *testing.T, src string) *frontend.Result {
	t.Helper()
	return frontend.Compile("<test>", src)
}

// Scenario 1: minimal return.
func TestScenario1_MinimalReturn(t *testing.T) {
	result := compile(t, `i32 main() { return 0; }`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 1)

	fn, ok := result.Decls[0].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, "i32", fn.ReturnType.String())

	body, ok := fn.Body.(*ast.CompoundStmt)
	assert.True(t, ok)
	assert.Len(t, body.Children, 1)

	ret, ok := body.Children[0].(*ast.ReturnStmt)
	assert.True(t, ok)
	lit, ok := ret.Value.(*ast.IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(0), lit.Value)
}

// Scenario 2: precedence.
func TestScenario2_Precedence(t *testing.T) {
	result := compile(t, `let i32 x = 1 + 2 * 3;`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 1)

	decl, ok := result.Decls[0].(*ast.VariableDecl)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "i32", decl.VarType.String())

	add, ok := decl.Init.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.Plus, add.Op)

	one, ok := add.LHS.(*ast.IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(1), one.Value)

	mul, ok := add.RHS.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.Star, mul.Op)
	assert.Equal(t, "i32", add.ResolvedType().String())
}

// Scenario 3: struct + member access in a shorthand body.
func TestScenario3_StructAndMember(t *testing.T) {
	result := compile(t, `struct P { i32 x; i32 y; }; let i32 f(P* p) = return p.x + p.y;`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 2)

	structDecl, ok := result.Decls[0].(*ast.StructDecl)
	assert.True(t, ok)
	assert.Equal(t, "P", structDecl.StructType.Name)
	assert.Len(t, structDecl.StructType.Fields, 2)
	assert.Equal(t, "x", structDecl.StructType.Fields[0].Name)
	assert.Equal(t, "i32", structDecl.StructType.Fields[0].Type.String())

	fn, ok := result.Decls[1].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "f", fn.Name)

	ret, ok := fn.Body.(*ast.ReturnStmt)
	assert.True(t, ok)

	sum, ok := ret.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.Plus, sum.Op)

	lhs, ok := sum.LHS.(*ast.MemberExpr)
	assert.True(t, ok)
	assert.Equal(t, "x", lhs.FieldName)
	obj, ok := lhs.Object.(*ast.Variable)
	assert.True(t, ok)
	assert.Equal(t, "p", obj.Name)

	rhs, ok := sum.RHS.(*ast.MemberExpr)
	assert.True(t, ok)
	assert.Equal(t, "y", rhs.FieldName)
}

// Scenario 4: class with a shorthand method body referencing `this`.
func TestScenario4_ClassWithMethod(t *testing.T) {
	result := compile(t, `class C { i32 v; i32 get() = return this.v; };`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 1)

	class, ok := result.Decls[0].(*ast.ClassDefinition)
	assert.True(t, ok)
	assert.Equal(t, "C", class.Name)
	assert.Len(t, class.Fields, 1)
	assert.Len(t, class.Methods, 1)

	method := class.Methods[0]
	assert.Equal(t, "get", method.Name)
	assert.Equal(t, "i32", method.ReturnType.String())
	assert.False(t, method.IsConstructor)

	thisSym := method.ThisSymbol
	assert.NotNil(t, thisSym)
	assert.Equal(t, types.Pointer, thisSym.Type.Kind)
	assert.Equal(t, "C", thisSym.Type.Pointee.Name)

	ret, ok := method.Body.(*ast.ReturnStmt)
	assert.True(t, ok)
	member, ok := ret.Value.(*ast.MemberExpr)
	assert.True(t, ok)
	assert.Equal(t, "v", member.FieldName)
}

// Scenario 5: pointer-array type.
func TestScenario5_PointerArrayType(t *testing.T) {
	result := compile(t, `let i8*[4] buf;`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 1)

	decl, ok := result.Decls[0].(*ast.VariableDecl)
	assert.True(t, ok)
	assert.Equal(t, "buf", decl.Name)
	assert.Equal(t, types.Array, decl.VarType.Kind)
	assert.Equal(t, uint32(4), decl.VarType.Length)
	assert.Equal(t, types.Pointer, decl.VarType.Element.Kind)
	assert.Equal(t, "i8", decl.VarType.Element.Pointee.Name)
	assert.Equal(t, "i8*[4]", decl.VarType.String())
}

// Scenario 6: error recovery produces exactly one diagnostic and the
// declaration after the bad one still parses.
func TestScenario6_ErrorRecovery(t *testing.T) {
	result := compile(t, `let i32 a = ; let i32 b = 1;`)
	assert.True(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Ctx.Diags.Reports(), 1)
	assert.Len(t, result.Decls, 2)

	b, ok := result.Decls[1].(*ast.VariableDecl)
	assert.True(t, ok)
	assert.Equal(t, "b", b.Name)
	lit, ok := b.Init.(*ast.IntegerLiteral)
	assert.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)
}

// Scenario 7 (expanded): a non-constructor method gets a pointer receiver
// and defaults its return type to void when none is declared.
func TestScenario7_PointerMethodReceiver(t *testing.T) {
	result := compile(t, `class C { i32 v; setV(i32 n) = this.v = n; };`)
	assert.False(t, result.Ctx.Diags.HadErrors())

	class, ok := result.Decls[0].(*ast.ClassDefinition)
	assert.True(t, ok)
	assert.Len(t, class.Methods, 1)

	method := class.Methods[0]
	assert.Equal(t, "setV", method.Name)
	assert.False(t, method.IsConstructor)
	assert.Nil(t, method.ReturnType)
	assert.Equal(t, types.Pointer, method.ThisSymbol.Type.Kind)

	assign, ok := method.Body.(*ast.ExprStmt)
	assert.True(t, ok)
	bin, ok := assign.Expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.Equals, bin.Op)

	lhs, ok := bin.LHS.(*ast.MemberExpr)
	assert.True(t, ok)
	assert.Equal(t, "v", lhs.FieldName)
}

// Scenario 8 (expanded): extern/import declaration registers a body-less
// function.
func TestScenario8_ImportDeclaration(t *testing.T) {
	result := compile(t, `import i32 puts(i8* s);`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 1)

	imp, ok := result.Decls[0].(*ast.ImportStmt)
	assert.True(t, ok)
	assert.Equal(t, "puts", imp.Name)
	assert.Equal(t, "i32", imp.ReturnType.String())
	assert.Len(t, imp.Params, 1)

	fn, ok := result.Ctx.Globals.LookupFunction("puts")
	assert.True(t, ok)
	assert.True(t, fn.Extern)
}

// Scenario 9 (expanded): registering a struct name twice is a
// diagnostic, not a silent overwrite.
func TestScenario9_DuplicateStructRegistration(t *testing.T) {
	result := compile(t, `struct P { i32 x; }; struct P { i32 y; };`)
	assert.True(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 2)

	first := result.Decls[0].(*ast.StructDecl)
	assert.Len(t, first.StructType.Fields, 1)
	assert.Equal(t, "x", first.StructType.Fields[0].Name)
}

func TestBoundary_EmptyInput(t *testing.T) {
	result := compile(t, ``)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Empty(t, result.Decls)
}

func TestBoundary_UnterminatedString(t *testing.T) {
	// Tested at the lexer level directly: a string left open at
	// end-of-file should report exactly once, independent of whatever
	// the parser would additionally expect to follow it.
	src := `"abc`
	reg := types.NewRegistry()
	reg.Init()
	d := diag.New()
	d.SetText("<test>", src)

	lexer.New("<test>", src, reg, d).Lex()

	assert.True(t, d.HadErrors())
	assert.Len(t, d.Reports(), 1)
}

func TestBoundary_EmptyShorthandBody(t *testing.T) {
	result := compile(t, `let i32 f() = { }`)
	assert.False(t, result.Ctx.Diags.HadErrors())

	fn, ok := result.Decls[0].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "i32", fn.ReturnType.String())

	body, ok := fn.Body.(*ast.CompoundStmt)
	assert.True(t, ok)
	assert.Empty(t, body.Children)
}

func TestBoundary_IfElseAcrossSemicolon(t *testing.T) {
	result := compile(t, `i32 main() { if (1) return 1; else return 2; }`)
	assert.False(t, result.Ctx.Diags.HadErrors())

	fn := result.Decls[0].(*ast.Function)
	body := fn.Body.(*ast.CompoundStmt)
	assert.Len(t, body.Children, 1)

	ifStmt, ok := body.Children[0].(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)

	_, thenIsReturn := ifStmt.Then.(*ast.ReturnStmt)
	assert.True(t, thenIsReturn)
	_, elseIsReturn := ifStmt.Else.(*ast.ReturnStmt)
	assert.True(t, elseIsReturn)
}

// Invariant 2: every expression node resolves to a valid registered Type
// handle, even under error recovery.
func TestInvariant_ExpressionsAlwaysHaveType(t *testing.T) {
	result := compile(t, `let i32 a = ;`)
	decl, ok := result.Decls[0].(*ast.VariableDecl)
	assert.True(t, ok)
	assert.NotNil(t, decl.Init)
	assert.NotNil(t, decl.Init.ResolvedType())
}

// Invariant 5: canonicalization — two identical pointer/array
// constructions return the same handle.
func TestInvariant_TypeCanonicalization(t *testing.T) {
	result := compile(t, `let i8*[4] a; let i8*[4] b;`)
	declA := result.Decls[0].(*ast.VariableDecl)
	declB := result.Decls[1].(*ast.VariableDecl)
	assert.Same(t, declA.VarType, declB.VarType)
}

// Re-running Init is a no-op: existing handles stay valid.
func TestInvariant_ReInitIsNoOp(t *testing.T) {
	reg := types.NewRegistry()
	reg.Init()
	before, _ := reg.Get("i32")
	reg.Init()
	after, _ := reg.Get("i32")
	assert.Same(t, before, after)
}

// A bare (no let/global) top-level function is only one of two accepted
// spellings; the let-prefixed form still works for a plain declaration.
func TestBareAndLetPrefixedTopLevelCoexist(t *testing.T) {
	result := compile(t, `i32 main() { return 0; } let i32 count;`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	assert.Len(t, result.Decls, 2)

	_, ok := result.Decls[0].(*ast.Function)
	assert.True(t, ok)
	decl, ok := result.Decls[1].(*ast.VariableDecl)
	assert.True(t, ok)
	assert.Equal(t, "count", decl.Name)
	assert.NotNil(t, decl.Global)
}

func TestGlobalOutsideTopLevelIsFlagged(t *testing.T) {
	result := compile(t, `i32 main() { global i32 x; return 0; }`)
	assert.True(t, result.Ctx.Diags.HadErrors())
}

func TestWhileLoop(t *testing.T) {
	result := compile(t, `i32 main() { while (1) { return 0; } }`)
	assert.False(t, result.Ctx.Diags.HadErrors())
	fn := result.Decls[0].(*ast.Function)
	body := fn.Body.(*ast.CompoundStmt)
	_, ok := body.Children[0].(*ast.WhileStmt)
	assert.True(t, ok)
}
