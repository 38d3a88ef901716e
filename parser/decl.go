/*
File    : viperc/parser/decl.go
Package : parser
*/

package parser

import (
	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/diag"
	"github.com/viperlang/viperc/lexer"
	"github.com/viperlang/viperc/scope"
	"github.com/viperlang/viperc/types"
)

// parseVariableDeclOrFunction handles the `let`/`global` keyword cases
// that fork into three shapes (spec.md §4.G): a local/global plain
// declaration (`let i32 x;` or `let i32 x = 1;`), or a function
// definition/forward-declaration (`let i32 add(i32 a, i32 b) { ... }`).
// `global` is only legal at the top level; a `global` appearing as a
// nested statement is still parsed (so recovery stays simple) but is
// flagged.
func (p *Parser) parseVariableDeclOrFunction() ast.TopLevel {
	startTok := p.advance() // 'let' or 'global'
	isGlobal := startTok.Kind == lexer.GlobalKeyword

	if isGlobal && p.scope != nil {
		p.ctx.Diags.ReportError(startTok.Span, "'global' is only valid at the top level")
	}

	return p.parseDeclBody(startTok.Span, isGlobal)
}

// parseBareFunctionOrDecl handles a declaration with no leading
// `let`/`global` keyword: a bare `T name(params) { ... }` function or
// `T name;` variable. Spec.md §8 Scenario 1 (`i32 main() { return 0; }`)
// uses this shorthand alongside the `let`-prefixed form the grammar's
// "Variable declaration" section names explicitly, so both are accepted.
func (p *Parser) parseBareFunctionOrDecl() ast.TopLevel {
	return p.parseDeclBody(p.current().Span, false)
}

func (p *Parser) parseDeclBody(startSpan diag.Span, isGlobal bool) ast.TopLevel {
	varType, _, _ := p.parseType()
	nameTok, _ := p.expect(lexer.Identifier, "declaration name")

	if p.check(lexer.LeftParen) {
		return p.parseFunctionTail(startSpan, varType, nameTok)
	}

	decl := &ast.VariableDecl{
		Span:    joinSpan(startSpan, nameTok.Span),
		VarType: varType,
		Name:    nameTok.Text,
	}

	if p.match(lexer.Equals) {
		decl.Init = p.parseExpression(0)
	}
	p.expect(lexer.Semicolon, "';'")

	if p.scope != nil && !isGlobal {
		sym, ok := p.scope.Declare(nameTok.Text, varType)
		if !ok {
			p.ctx.Diags.ReportError(nameTok.Span, "redeclaration of \""+nameTok.Text+"\" in this scope")
			sym, _ = p.scope.FindLocal(nameTok.Text)
		}
		decl.Symbol = sym
	} else {
		gv := &scope.GlobalVariable{Name: nameTok.Text, Type: varType}
		if !p.ctx.Globals.DeclareVariable(gv) {
			p.ctx.Diags.ReportError(nameTok.Span, "redeclaration of global \""+nameTok.Text+"\"")
		}
		decl.Global = gv
	}

	return decl
}

// parseFunctionTail parses the parameter list and body following a
// function's return type and name (spec.md §4.G "Function declaration").
// A function with no body (bare `;`) is a forward declaration — legal at
// the top level, matching `extern`'s shape but spelled with `let`.
func (p *Parser) parseFunctionTail(startSpan diag.Span, returnType *types.Type, nameTok lexer.Token) *ast.Function {
	fn := &ast.Function{
		Span:       joinSpan(startSpan, nameTok.Span),
		ReturnType: returnType,
		Name:       nameTok.Text,
	}

	fnScope := scope.New(nil)
	params, closeTok := p.parseParamList(true, fnScope)
	fn.Params = params
	fn.Span = joinSpan(fn.Span, closeTok.Span)

	if !p.ctx.Globals.DeclareFunction(&scope.FunctionSymbol{
		Name: nameTok.Text, ReturnType: returnType, Params: params,
	}) {
		p.ctx.Diags.ReportError(nameTok.Span, "redeclaration of function \""+nameTok.Text+"\"")
	}

	if p.match(lexer.Semicolon) {
		return fn
	}

	prevScope := p.scope
	p.scope = fnScope
	p.withReturnType(returnType, func() {
		if p.check(lexer.LeftBracket) {
			fn.Body = p.parseCompoundStmt()
			p.finishStatement(true)
		} else if p.match(lexer.Equals) {
			// The shorthand body is a single statement, not a bare
			// expression: spec.md §8 Scenario 3/4 both write
			// `= return expr;`, matching spec.md §4.G's "the body is
			// parsed" wording for this form.
			fn.Body = p.parseStatement()
		} else {
			p.ctx.Diags.ReportError(p.current().Span, "expected function body or ';'")
		}
	})
	p.scope = prevScope
	fn.Scope = fnScope

	return fn
}

// parseParamList parses a parenthesized, comma-separated parameter list.
// When declareInto is non-nil, each parsed parameter is also declared as
// a symbol in that scope (used for live function/method bodies); extern
// and import declarations pass nil since there is no body to resolve
// references against. requireNames controls whether a bare type with no
// following identifier is accepted (extern/import parameters may be
// unnamed).
func (p *Parser) parseParamList(requireNames bool, declareInto *scope.Scope) ([]types.Field, lexer.Token) {
	p.expect(lexer.LeftParen, "'('")

	var params []types.Field
	if !p.check(lexer.RightParen) {
		for {
			pType, _, _ := p.parseType()
			var pName string
			if p.check(lexer.Identifier) {
				nameTok := p.advance()
				pName = nameTok.Text
			} else if requireNames {
				p.ctx.Diags.ReportError(p.current().Span, "expected parameter name")
			}

			params = append(params, types.Field{Type: pType, Name: pName})
			if declareInto != nil && pName != "" {
				if _, ok := declareInto.DeclareParam(pName, pType); !ok {
					p.ctx.Diags.ReportError(p.current().Span, "duplicate parameter name \""+pName+"\"")
				}
			}

			if !p.match(lexer.Comma) {
				break
			}
			if p.check(lexer.RightParen) {
				p.ctx.Diags.ReportError(p.current().Span, "trailing comma not allowed in parameter list")
				break
			}
		}
	}

	closeTok, _ := p.expect(lexer.RightParen, "')'")
	return params, closeTok
}
