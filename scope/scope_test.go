/*
File    : viperc/scope/scope_test.go
Package : scope
*/

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viperlang/viperc/types"
)

func TestScope_DeclareAndFindLocal(t *testing.T) {
	s := New(nil)
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}

	sym, ok := s.Declare("x", i32)
	assert.True(t, ok)
	assert.Equal(t, "x", sym.Name)
	assert.False(t, sym.IsParam)

	found, ok := s.FindLocal("x")
	assert.True(t, ok)
	assert.Same(t, sym, found)
}

func TestScope_RedeclarationInSameScopeFails(t *testing.T) {
	s := New(nil)
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}

	_, ok := s.Declare("x", i32)
	assert.True(t, ok)

	_, ok = s.Declare("x", i32)
	assert.False(t, ok)
}

func TestScope_ShadowingOuterIsAllowed(t *testing.T) {
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}
	outer := New(nil)
	outer.Declare("x", i32)

	inner := New(outer)
	sym, ok := inner.Declare("x", i32)
	assert.True(t, ok)

	found, _ := inner.Find("x")
	assert.Same(t, sym, found)

	_, ok = inner.FindLocal("x")
	assert.True(t, ok)
}

func TestScope_FindWalksParentChain(t *testing.T) {
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}
	outer := New(nil)
	outerSym, _ := outer.Declare("x", i32)

	inner := New(outer)
	innermost := New(inner)

	found, ok := innermost.Find("x")
	assert.True(t, ok)
	assert.Same(t, outerSym, found)

	_, ok = innermost.FindLocal("x")
	assert.False(t, ok)
}

func TestScope_DeclareParamMarksIsParam(t *testing.T) {
	s := New(nil)
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}

	sym, ok := s.DeclareParam("n", i32)
	assert.True(t, ok)
	assert.True(t, sym.IsParam)
}

func TestGlobalTable_DeclareAndLookup(t *testing.T) {
	g := NewGlobalTable()
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}

	ok := g.DeclareFunction(&FunctionSymbol{Name: "main", ReturnType: i32})
	assert.True(t, ok)

	ok = g.DeclareFunction(&FunctionSymbol{Name: "main", ReturnType: i32})
	assert.False(t, ok, "redeclaring a function name must fail")

	fn, ok := g.LookupFunction("main")
	assert.True(t, ok)
	assert.Same(t, i32, fn.ReturnType)

	_, ok = g.LookupFunction("missing")
	assert.False(t, ok)
}

func TestGlobalTable_DeclareAndLookupVariable(t *testing.T) {
	g := NewGlobalTable()
	i32 := &types.Type{Kind: types.Primitive, Name: "i32"}

	ok := g.DeclareVariable(&GlobalVariable{Name: "count", Type: i32})
	assert.True(t, ok)

	ok = g.DeclareVariable(&GlobalVariable{Name: "count", Type: i32})
	assert.False(t, ok)

	v, ok := g.LookupVariable("count")
	assert.True(t, ok)
	assert.Same(t, i32, v.Type)
}
