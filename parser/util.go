/*
File    : viperc/parser/util.go
Package : parser
*/

package parser

import (
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/types"
)

// joinSpan builds a span starting at a's start (and a's line/col) and
// ending at b's end — used to give a composite node a span covering
// every token it consumed.
func joinSpan(a, b diag.Span) diag.Span {
	return diag.Span{Start: a.Start, End: b.End, Line: a.Line, Col: a.Col}
}

func (p *Parser) voidType() *types.Type {
	t, _ := p.ctx.Types.Get("void")
	return t
}

func (p *Parser) boolType() *types.Type {
	t, _ := p.ctx.Types.Get("bool")
	return t
}

func (p *Parser) i32Type() *types.Type {
	t, _ := p.ctx.Types.Get("i32")
	return t
}
