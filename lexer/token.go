/*
File    : viperc/lexer/token.go
Package : lexer
*/

package lexer

import "github.com/viperlang/viperc/diag"

// Kind enumerates every token variant the lexer can emit, matching the
// wire list the parser is built against.
type Kind int

const (
	FuncKeyword Kind = iota
	ReturnKeyword
	LetKeyword
	GlobalKeyword
	IfKeyword
	ElseKeyword
	WhileKeyword
	TrueKeyword
	FalseKeyword
	StructKeyword
	ClassKeyword
	ExternKeyword
	ImportKeyword
	NewKeyword

	Identifier
	Type
	IntegerLiteral
	StringLiteral

	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftSquareBracket
	RightSquareBracket
	Semicolon
	Colon
	Comma
	Dot
	Asperand
	Hash
	Bang
	Star
	Slash
	Plus
	Minus
	Equals
	PlusEquals
	MinusEquals
	StarEquals
	SlashEquals
	DoubleEquals
	BangEquals
	LessThan
	GreaterThan
	LessEqual
	GreaterEqual
	DoubleAmpersand
	DoublePipe
	Ampersand
	Pipe
	Caret
	Tilde
	RightArrow

	Error
	EndOfFile
)

var kindNames = map[Kind]string{
	FuncKeyword:        "func",
	ReturnKeyword:      "return",
	LetKeyword:         "let",
	GlobalKeyword:      "global",
	IfKeyword:          "if",
	ElseKeyword:        "else",
	WhileKeyword:       "while",
	TrueKeyword:        "true",
	FalseKeyword:       "false",
	StructKeyword:      "struct",
	ClassKeyword:       "class",
	ExternKeyword:      "extern",
	ImportKeyword:      "import",
	NewKeyword:         "new",
	Identifier:         "identifier",
	Type:               "type",
	IntegerLiteral:     "integer literal",
	StringLiteral:      "string literal",
	LeftParen:          "(",
	RightParen:         ")",
	LeftBracket:        "{",
	RightBracket:       "}",
	LeftSquareBracket:  "[",
	RightSquareBracket: "]",
	Semicolon:          ";",
	Colon:              ":",
	Comma:              ",",
	Dot:                ".",
	Asperand:           "@",
	Hash:               "#",
	Bang:               "!",
	Star:               "*",
	Slash:              "/",
	Plus:               "+",
	Minus:              "-",
	Equals:             "=",
	PlusEquals:         "+=",
	MinusEquals:        "-=",
	StarEquals:         "*=",
	SlashEquals:        "/=",
	DoubleEquals:       "==",
	BangEquals:         "!=",
	LessThan:           "<",
	GreaterThan:        ">",
	LessEqual:          "<=",
	GreaterEqual:       ">=",
	DoubleAmpersand:    "&&",
	DoublePipe:         "||",
	Ampersand:          "&",
	Pipe:               "|",
	Caret:              "^",
	Tilde:              "~",
	RightArrow:         "->",
	Error:              "error",
	EndOfFile:          "end of file",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Keywords maps every reserved word to its Kind. The lexer consults this
// after scanning a maximal identifier-shaped run, before falling back to
// a type-registry lookup and then to a plain Identifier.
var Keywords = map[string]Kind{
	"func":   FuncKeyword,
	"return": ReturnKeyword,
	"let":    LetKeyword,
	"global": GlobalKeyword,
	"if":     IfKeyword,
	"else":   ElseKeyword,
	"while":  WhileKeyword,
	"true":   TrueKeyword,
	"false":  FalseKeyword,
	"struct": StructKeyword,
	"class":  ClassKeyword,
	"extern": ExternKeyword,
	"import": ImportKeyword,
	"new":    NewKeyword,
}

// Token is a single lexed unit: its kind, the literal text it was scanned
// from, and its source span.
type Token struct {
	Kind Kind
	Text string
	Span diag.Span
}

// Is reports whether the token's kind matches k — the "equality by kind
// only" convenience predicate from the token model.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
