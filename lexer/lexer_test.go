/*
File    : viperc/lexer/lexer_test.go
Package : lexer
*/

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/types"
)

func newTestLexer(src string) (*Lexer, *diag.Diagnostics) {
	reg := types.NewRegistry()
	reg.Init()
	d := diag.New()
	d.SetText("<test>", src)
	return New("<test>", src, reg, d), d
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLex_IntegersAndOperators(t *testing.T) {
	lx, d := newTestLexer(`12 + 3 * 4`)
	tokens := lx.Lex()

	assert.False(t, d.HadErrors())
	assert.Equal(t, []Kind{IntegerLiteral, Plus, IntegerLiteral, Star, IntegerLiteral, EndOfFile}, kinds(tokens))
	assert.Equal(t, "12", tokens[0].Text)
	assert.Equal(t, "4", tokens[4].Text)
}

func TestLex_KeywordsAndPrimitiveTypes(t *testing.T) {
	lx, d := newTestLexer(`let i32 x = 0;`)
	tokens := lx.Lex()

	assert.False(t, d.HadErrors())
	assert.Equal(t, []Kind{LetKeyword, Type, Identifier, Equals, IntegerLiteral, Semicolon, EndOfFile}, kinds(tokens))
	assert.Equal(t, "i32", tokens[1].Text)
}

func TestLex_StringWithEscapes(t *testing.T) {
	lx, d := newTestLexer(`"a\nb"`)
	tokens := lx.Lex()

	assert.False(t, d.HadErrors())
	assert.Equal(t, StringLiteral, tokens[0].Kind)
	assert.Equal(t, "a\nb", tokens[0].Text)
}

func TestLex_UnterminatedStringReportsOnce(t *testing.T) {
	lx, d := newTestLexer(`"abc`)
	lx.Lex()

	assert.True(t, d.HadErrors())
	assert.Len(t, d.Reports(), 1)
}

func TestLex_UnknownEscapeSequence(t *testing.T) {
	lx, d := newTestLexer(`"a\qb"`)
	lx.Lex()

	assert.True(t, d.HadErrors())
}

func TestLex_LineAndBlockComments(t *testing.T) {
	lx, d := newTestLexer("1 // comment\n+ /* block */ 2")
	tokens := lx.Lex()

	assert.False(t, d.HadErrors())
	assert.Equal(t, []Kind{IntegerLiteral, Plus, IntegerLiteral, EndOfFile}, kinds(tokens))
}

func TestLex_IntegerOverflow(t *testing.T) {
	lx, d := newTestLexer(`99999999999999999999`)
	lx.Lex()

	assert.True(t, d.HadErrors())
}

func TestLex_InvalidCharacterReported(t *testing.T) {
	lx, d := newTestLexer("1 $ 2")
	lx.Lex()

	assert.True(t, d.HadErrors())
}

// Invariant: tokens form a strictly increasing, non-overlapping sequence
// of source offsets.
func TestLex_TokenSpansDoNotOverlap(t *testing.T) {
	lx, _ := newTestLexer(`let i32 abc = 123;`)
	tokens := lx.Lex()

	for i := 1; i < len(tokens); i++ {
		if tokens[i].Kind == EndOfFile {
			continue
		}
		assert.GreaterOrEqual(t, tokens[i].Span.Start, tokens[i-1].Span.End)
	}
}

func TestLex_EmptyInputYieldsOnlyEOF(t *testing.T) {
	lx, d := newTestLexer(``)
	tokens := lx.Lex()

	assert.False(t, d.HadErrors())
	assert.Equal(t, []Kind{EndOfFile}, kinds(tokens))
}

// Structs registered mid-stream (simulating the parser's live registry
// updates) are recognized as Type tokens by Next from that point on.
func TestLex_NextRecognizesStructRegisteredMidStream(t *testing.T) {
	reg := types.NewRegistry()
	reg.Init()
	d := diag.New()
	src := `P P`
	d.SetText("<test>", src)
	lx := New("<test>", src, reg, d)

	first := lx.Next()
	assert.Equal(t, Identifier, first.Kind)

	_, err := reg.RegisterStruct("P", []types.Field{})
	assert.NoError(t, err)

	second := lx.Next()
	assert.Equal(t, Type, second.Kind)
}
