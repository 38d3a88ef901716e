/*
File    : viperc/parser/class.go
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

// parseStructDecl parses a plain `struct Name { field; ... };` with no
// methods. Unlike a class, a struct has no self-referential method body
// that would need the type handle mid-parse, so the full field list is
// parsed first and the type registered once at the end.
func (p *Parser) parseStructDecl() ast.TopLevel {
	startTok := p.advance() // 'struct'
	// A name that is already registered (a duplicate declaration) arrives
	// as a Type token; it is accepted here so RegisterStruct reports it.
	var nameTok lexer.Token
	if p.check(lexer.Type) {
		nameTok = p.advance()
	} else {
		nameTok, _ = p.expect(lexer.Identifier, "struct name")
	}
	p.expect(lexer.LeftBracket, "'{'")

	var fields []types.Field
	for !p.check(lexer.RightBracket) && !p.check(lexer.EndOfFile) {
		fType, _, _ := p.parseType()
		fNameTok, _ := p.expect(lexer.Identifier, "field name")
		p.expect(lexer.Semicolon, "';'")
		fields = append(fields, types.Field{Type: fType, Name: fNameTok.Text})
	}
	closeTok, _ := p.expect(lexer.RightBracket, "'}'")
	p.finishStatement(true)

	structType, err := p.ctx.Types.RegisterStruct(nameTok.Text, fields)
	if err != nil {
		p.ctx.Diags.ReportError(nameTok.Span, err.Error())
		structType, _ = p.ctx.Types.Get(nameTok.Text)
	}

	return &ast.StructDecl{
		Span:       joinSpan(startTok.Span, closeTok.Span),
		StructType: structType,
	}
}

// parseClassDefinition parses `class Name { member; ... };`, where each
// member is a field, a method, or a constructor (spec.md §4.G "Class
// definition"). The struct type is forward-registered with an empty
// field list before any member is parsed, so a member's own type (e.g. a
// self-referential `Name*` field) resolves through the lexer's live
// registry lookup; the body and method table are attached once the full
// member list has been parsed.
func (p *Parser) parseClassDefinition() ast.TopLevel {
	startTok := p.advance() // 'class'
	nameTok, _ := p.expect(lexer.Identifier, "class name")

	structType, err := p.ctx.Types.RegisterStruct(nameTok.Text, nil)
	if err != nil {
		p.ctx.Diags.ReportError(nameTok.Span, err.Error())
		structType, _ = p.ctx.Types.Get(nameTok.Text)
	}

	p.expect(lexer.LeftBracket, "'{'")

	var fields []types.Field
	var methods []*ast.MethodDecl
	var methodSigs []types.MethodSignature

	for !p.check(lexer.RightBracket) && !p.check(lexer.EndOfFile) {
		field, method := p.parseClassMember(nameTok.Text, structType)
		if method != nil {
			methods = append(methods, method)
			methodSigs = append(methodSigs, types.MethodSignature{
				Name: method.Name, ReturnType: method.ReturnType, Params: method.Params,
			})
		} else if field != nil {
			fields = append(fields, *field)
		}
	}
	closeTok, _ := p.expect(lexer.RightBracket, "'}'")
	p.finishStatement(true)

	// On a duplicate name structType is the earlier definition, which is
	// left as it was.
	if err == nil {
		p.ctx.Types.SetStructBody(structType, fields)
		p.ctx.Types.SetStructMethods(structType, methodSigs)
	}

	return &ast.ClassDefinition{
		Span:       joinSpan(startTok.Span, closeTok.Span),
		Name:       nameTok.Text,
		StructType: structType,
		Fields:     fields,
		Methods:    methods,
	}
}

// parseClassMember parses one member of a class body, returning either a
// field descriptor or a method node (never both). A constructor is
// recognized by its name matching the owning class's name followed
// directly by '(': the class name is registered before any member is
// scanned, so the lexer delivers it as a Type token here. An Identifier
// followed directly by '(' is a method written without a return type.
func (p *Parser) parseClassMember(className string, structType *types.Type) (*types.Field, *ast.MethodDecl) {
	startTok := p.current()

	if startTok.Kind == lexer.Type && startTok.Text == className && p.peek(1).Kind == lexer.LeftParen {
		nameTok := p.advance()
		return nil, p.parseMethodTail(startTok.Span, nameTok.Text, nil, true, structType)
	}
	if startTok.Kind == lexer.Identifier && p.peek(1).Kind == lexer.LeftParen {
		nameTok := p.advance()
		return nil, p.parseMethodTail(startTok.Span, nameTok.Text, nil, false, structType)
	}

	memberType, _, ok := p.parseType()
	if !ok {
		p.synchronize()
		return nil, nil
	}
	nameTok, _ := p.expect(lexer.Identifier, "member name")

	if p.check(lexer.LeftParen) {
		return nil, p.parseMethodTail(startTok.Span, nameTok.Text, memberType, false, structType)
	}

	p.expect(lexer.Semicolon, "';'")
	return &types.Field{Type: memberType, Name: nameTok.Text}, nil
}

// parseMethodTail parses the parameter list, synthetic `this` receiver,
// and body shared by constructors and methods. A method's effective
// return type defaults to void when none was declared (spec.md §8
// Scenario 7); a constructor's stored ReturnType stays nil, matching
// "a method record is appended with null return type" for constructors.
// `this` is typed as the bare struct for a constructor and as a pointer
// to it for a method, matching the pointer-receiver convention shown in
// Scenario 7's `setV`.
func (p *Parser) parseMethodTail(startSpan diag.Span, name string, returnType *types.Type, isConstructor bool, structType *types.Type) *ast.MethodDecl {
	method := &ast.MethodDecl{
		Span:          startSpan,
		Name:          name,
		ReturnType:    returnType,
		IsConstructor: isConstructor,
	}

	methodScope := scope.New(nil)
	params, closeTok := p.parseParamList(true, methodScope)
	method.Params = params
	method.Span = joinSpan(method.Span, closeTok.Span)

	thisType := structType
	if !isConstructor {
		thisType = p.ctx.Types.CreatePointer(structType)
	}
	thisSym, _ := methodScope.DeclareParam("this", thisType)
	method.ThisSymbol = thisSym

	effectiveReturn := returnType
	if effectiveReturn == nil {
		effectiveReturn = p.voidType()
	}

	prevScope := p.scope
	p.scope = methodScope
	p.withReturnType(effectiveReturn, func() {
		if p.check(lexer.LeftBracket) {
			method.Body = p.parseCompoundStmt()
			p.finishStatement(true)
		} else if p.match(lexer.Equals) {
			// See the matching comment in parseFunctionTail: the
			// shorthand body is a single statement (often a ReturnStmt),
			// not a bare expression.
			method.Body = p.parseStatement()
		} else if p.match(lexer.Semicolon) {
			// bodyless forward declaration
		} else {
			p.ctx.Diags.ReportError(p.current().Span, "expected method body or ';'")
		}
	})
	p.scope = prevScope
	method.Scope = methodScope

	return method
}

// parseExternFunction parses `extern T name(params);` — a body-less
// signature registered in the global function table.
func (p *Parser) parseExternFunction() ast.TopLevel {
	startTok := p.advance() // 'extern'
	returnType, _, _ := p.parseType()
	nameTok, _ := p.expect(lexer.Identifier, "function name")
	params, closeTok := p.parseParamList(false, nil)
	p.expect(lexer.Semicolon, "';'")

	if !p.ctx.Globals.DeclareFunction(&scope.FunctionSymbol{
		Name: nameTok.Text, ReturnType: returnType, Params: params, Extern: true,
	}) {
		p.ctx.Diags.ReportError(nameTok.Span, "redeclaration of function \""+nameTok.Text+"\"")
	}

	return &ast.ExternFunction{
		Span:       joinSpan(startTok.Span, closeTok.Span),
		ReturnType: returnType,
		Name:       nameTok.Text,
		Params:     params,
	}
}

// parseImportStmt parses `import T name(params);`, the sole cross-file
// mechanism supported (spec.md §9 non-goals exclude a module system
// beyond this). Shares ExternFunction's registration semantics.
func (p *Parser) parseImportStmt() ast.TopLevel {
	startTok := p.advance() // 'import'
	returnType, _, _ := p.parseType()
	nameTok, _ := p.expect(lexer.Identifier, "function name")
	params, closeTok := p.parseParamList(false, nil)
	p.expect(lexer.Semicolon, "';'")

	if !p.ctx.Globals.DeclareFunction(&scope.FunctionSymbol{
		Name: nameTok.Text, ReturnType: returnType, Params: params, Extern: true,
	}) {
		p.ctx.Diags.ReportError(nameTok.Span, "redeclaration of function \""+nameTok.Text+"\"")
	}

	return &ast.ImportStmt{
		Span:       joinSpan(startTok.Span, closeTok.Span),
		Name:       nameTok.Text,
		ReturnType: returnType,
		Params:     params,
	}
}
