/*
File    : viperc/parser/stmt.go
Package : parser
*/

package parser

import (
	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/scope"
)

// parseTopLevel dispatches on the first token of a top-level declaration.
// Anything that doesn't start one of the recognized forms is reported and
// skipped via synchronize so a single typo doesn't cascade into dozens of
// diagnostics (spec.md §4.G "Diagnostics behavior").
func (p *Parser) parseTopLevel() ast.TopLevel {
	switch p.current().Kind {
	case lexer.LetKeyword, lexer.GlobalKeyword:
		return p.parseVariableDeclOrFunction()
	case lexer.Type:
		// A bare `T name(...)`/`T name;` with no leading `let`/`global`
		// (spec.md §8 Scenario 1: `i32 main() { return 0; }`).
		return p.parseBareFunctionOrDecl()
	case lexer.StructKeyword:
		return p.parseStructDecl()
	case lexer.ClassKeyword:
		return p.parseClassDefinition()
	case lexer.ExternKeyword:
		return p.parseExternFunction()
	case lexer.ImportKeyword:
		return p.parseImportStmt()
	default:
		tok := p.current()
		p.ctx.Diags.ReportError(tok.Span, "expected a top-level declaration, found "+describeToken(tok))
		p.synchronize()
		return nil
	}
}

// parseStatement dispatches on the first token of a statement inside a
// function or method body. Anything not recognized as one of the
// statement-level keywords is parsed as a bare expression statement (an
// assignment or a call used for effect), matching how the grammar falls
// through to expression parsing for everything else.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current().Kind {
	case lexer.LetKeyword, lexer.GlobalKeyword:
		return p.parseVariableDeclOrFunction().(ast.Stmt)
	case lexer.ReturnKeyword:
		return p.parseReturnStmt()
	case lexer.LeftBracket:
		stmt := p.parseCompoundStmt()
		p.finishStatement(true)
		return stmt
	case lexer.IfKeyword:
		return p.parseIfStmt()
	case lexer.WhileKeyword:
		return p.parseWhileStmt()
	case lexer.StructKeyword:
		return p.parseStructDecl().(ast.Stmt)
	case lexer.ClassKeyword:
		return p.parseClassDefinition().(ast.Stmt)
	case lexer.ExternKeyword:
		return p.parseExternFunction().(ast.Stmt)
	case lexer.ImportKeyword:
		return p.parseImportStmt().(ast.Stmt)
	default:
		expr := p.parseExpression(0)
		stmt := &ast.ExprStmt{Span: expr.Pos(), Expr: expr}
		p.finishStatement(false)
		return stmt
	}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	startTok := p.advance() // 'return'
	stmt := &ast.ReturnStmt{Span: startTok.Span, ReturnType: p.returnType}

	if !p.check(lexer.Semicolon) {
		stmt.Value = p.parseExpression(0)
		stmt.Span = joinSpan(startTok.Span, stmt.Value.Pos())
	}
	p.expect(lexer.Semicolon, "';'")
	return stmt
}

// parseCompoundStmt parses a `{ ... }` block, introducing a new child
// scope owned by the returned CompoundStmt (spec.md §3 "scopes owned by
// the declaring AST node"). A defensive position check guards against an
// infinite loop if some future statement form fails to consume any
// tokens on error.
func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	openTok, _ := p.expect(lexer.LeftBracket, "'{'")
	stmt := &ast.CompoundStmt{Span: openTok.Span}

	child := p.withScope(func(child *scope.Scope) {
		for !p.check(lexer.RightBracket) && !p.check(lexer.EndOfFile) {
			before := p.pos
			stmt.Children = append(stmt.Children, p.parseStatement())
			if p.pos == before {
				p.advance()
			}
		}
	})
	stmt.Scope = child

	closeTok, _ := p.expect(lexer.RightBracket, "'}'")
	stmt.Span = joinSpan(stmt.Span, closeTok.Span)
	return stmt
}

func (p *Parser) parseIfStmt() ast.Stmt {
	startTok := p.advance() // 'if'
	p.expect(lexer.LeftParen, "'('")
	cond := p.parseExpression(0)
	p.expect(lexer.RightParen, "')'")

	thenStmt := p.parseStatement()

	stmt := &ast.IfStmt{
		Span: joinSpan(startTok.Span, thenStmt.Pos()),
		Cond: cond,
		Then: thenStmt,
	}

	// No special lookahead past a trailing ';' is needed here: the
	// then-branch already consumed its own terminator inside
	// parseStatement, so the cursor sits directly on 'else' if present.
	if p.match(lexer.ElseKeyword) {
		stmt.Else = p.parseStatement()
		stmt.Span = joinSpan(stmt.Span, stmt.Else.Pos())
	}
	return stmt
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	startTok := p.advance() // 'while'
	p.expect(lexer.LeftParen, "'('")
	cond := p.parseExpression(0)
	p.expect(lexer.RightParen, "')'")

	body := p.parseStatement()
	return &ast.WhileStmt{
		Span: joinSpan(startTok.Span, body.Pos()),
		Cond: cond,
		Body: body,
	}
}
