/*
File    : viperc/parser/parser.go
Package : parser
*/

// Package parser implements the recursive-descent, Pratt-expression
// parser that drives the lexer, type registry, and scope chain together
// into a typed AST. The parser is the only component that writes to
// scopes and the type registry while processing source (spec.md §2).
package parser

import (
	"fmt"

	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/compiler"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// Parser pulls tokens one at a time from lx (rather than consuming an
// already-fully-lexed slice) and holds the mutable parsing state: the
// current lexical scope (nil at top level) and the return type in effect
// for the function/method body currently being parsed. Both are pushed
// and restored by scoped guards rather than passed down every call, per
// the design note in SPEC_FULL.md §9.
//
// Pulling tokens lazily (via lx.Next, buffered here just far enough for
// lookahead) rather than eagerly lexing the whole file up front is what
// lets a struct or class registered mid-parse be recognized as a Type
// token later in the same file: the lexer consults the live registry at
// the moment each identifier is scanned, not before any parsing has
// happened.
type Parser struct {
	ctx     *compiler.Context
	lx      *lexer.Lexer
	buffer  []lexer.Token
	pos     int

	scope      *scope.Scope
	returnType *types.Type
}

// New creates a Parser that pulls tokens from lx as needed, sharing ctx
// with whatever lexer produced it.
func New(ctx *compiler.Context, lx *lexer.Lexer) *Parser {
	return &Parser{ctx: ctx, lx: lx}
}

// ensure grows the token buffer until index idx is populated.
func (p *Parser) ensure(idx int) {
	for len(p.buffer) <= idx {
		p.buffer = append(p.buffer, p.lx.Next())
	}
}

// Tokens returns every token pulled from the lexer so far, in order --
// by the time Parse returns, this is the complete token stream for the
// file, usable for a raw dump without a second lexing pass.
func (p *Parser) Tokens() []lexer.Token {
	return p.buffer
}

// Parse consumes the entire token stream and returns the top-level
// declaration list (spec.md §4.G "parse() -> sequence of top-level AST
// nodes").
func (p *Parser) Parse() []ast.TopLevel {
	var decls []ast.TopLevel
	for !p.check(lexer.EndOfFile) {
		p.ctx.Diags.ResetStatementDedup()
		before := p.pos
		if decl := p.parseTopLevel(); decl != nil {
			decls = append(decls, decl)
		}
		if p.pos == before {
			p.advance()
		}
	}
	return decls
}

func (p *Parser) current() lexer.Token {
	p.ensure(p.pos)
	return p.buffer[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	idx := p.pos + offset
	if idx < 0 {
		idx = 0
	}
	p.ensure(idx)
	return p.buffer[idx]
}

func (p *Parser) check(k lexer.Kind) bool {
	return p.current().Kind == k
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Kind != lexer.EndOfFile {
		p.pos++
	}
	return tok
}

func (p *Parser) match(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k; otherwise it
// reports a diagnostic naming what was expected and returns the
// unconsumed token with ok = false. Callers that can still make progress
// without the expected token (e.g. a missing closing paren) should keep
// going; callers that cannot should call synchronize.
func (p *Parser) expect(k lexer.Kind, what string) (lexer.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	tok := p.current()
	p.ctx.Diags.ReportError(tok.Span, fmt.Sprintf("expected %s, found %s", what, describeToken(tok)))
	return tok, false
}

func describeToken(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.Identifier, lexer.Type, lexer.IntegerLiteral, lexer.StringLiteral:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	default:
		return tok.Kind.String()
	}
}

// synchronize skips tokens until a synchronization point: a consumed
// `;`, or a token starting a new declaration/statement, or end of file.
// Used after a diagnostic has been reported for an unexpected token so
// parsing can resume instead of cascading further errors (spec.md §4.G
// "Diagnostics behavior").
func (p *Parser) synchronize() {
	for !p.check(lexer.EndOfFile) {
		if p.match(lexer.Semicolon) {
			return
		}
		switch p.current().Kind {
		case lexer.RightBracket,
			lexer.LetKeyword, lexer.GlobalKeyword,
			lexer.StructKeyword, lexer.ClassKeyword,
			lexer.ExternKeyword, lexer.ImportKeyword,
			lexer.IfKeyword, lexer.WhileKeyword, lexer.ReturnKeyword:
			return
		}
		p.advance()
	}
}

// finishStatement decides how a statement's trailing `;` is handled, per
// the clean rule SPEC_FULL.md §9 prefers over literally mutating the
// token stream with a synthetic semicolon: a statement that ended in `}`
// (braceTerminated) treats a following `;` as optional, everything else
// requires one.
func (p *Parser) finishStatement(braceTerminated bool) {
	if braceTerminated {
		p.match(lexer.Semicolon)
		return
	}
	p.expect(lexer.Semicolon, "';'")
}

// withScope runs fn with p.scope replaced by a new child scope, then
// restores the previous scope unconditionally — a scoped guard so an
// early return from fn (e.g. after a reported error) can never leak
// parser state, per the design note in SPEC_FULL.md §9.
func (p *Parser) withScope(fn func(child *scope.Scope)) *scope.Scope {
	prev := p.scope
	child := scope.New(prev)
	p.scope = child
	fn(child)
	p.scope = prev
	return child
}

// withReturnType runs fn with the current-return-type slot set to t,
// restoring the previous value afterward.
func (p *Parser) withReturnType(t *types.Type, fn func()) {
	prev := p.returnType
	p.returnType = t
	fn()
	p.returnType = prev
}
