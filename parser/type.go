/*
File    : viperc/parser/type.go
Package : parser
*/

package parser

import (
	"strconv"

	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/types"
)

// parseType parses a Type token followed by any number of `*` and `[N]`
// suffixes, left-to-right (spec.md §4.G "Type parsing": `T*[4]` denotes
// an array-of-4 of `T*`). Returns ok = false if the leading Type token is
// missing; the caller is then expected to recover.
func (p *Parser) parseType() (*types.Type, diag.Span, bool) {
	tok, ok := p.expect(lexer.Type, "type name")
	if !ok {
		return nil, tok.Span, false
	}

	t, found := p.ctx.Types.Get(tok.Text)
	if !found {
		p.ctx.Diags.ReportError(tok.Span, "unknown type \""+tok.Text+"\"")
		t = p.voidType()
	}

	span := tok.Span
	for {
		if p.check(lexer.Star) {
			starTok := p.advance()
			t = p.ctx.Types.CreatePointer(t)
			span = joinSpan(span, starTok.Span)
			continue
		}
		if p.check(lexer.LeftSquareBracket) {
			p.advance()
			lengthTok, lengthOk := p.expect(lexer.IntegerLiteral, "array length")
			var length uint64
			if lengthOk {
				length, _ = strconv.ParseUint(lengthTok.Text, 10, 32)
			}
			closeTok, _ := p.expect(lexer.RightSquareBracket, "']'")
			t = p.ctx.Types.CreateArray(uint32(length), t)
			span = joinSpan(span, closeTok.Span)
			continue
		}
		break
	}
	return t, span, true
}
