/*
File    : viperc/parser/precedence.go
Package : parser
*/

package parser

import "github.com/viperlang/viperc/lexer"

// binaryPrecedence is the table from spec.md §4.G, higher binds tighter.
var binaryPrecedence = map[lexer.Kind]int{
	lexer.LeftSquareBracket: 55,
	lexer.LeftParen:         55,

	lexer.Dot: 45,

	lexer.Star:  40,
	lexer.Slash: 40,

	lexer.Plus:  35,
	lexer.Minus: 35,

	lexer.LessThan:     30,
	lexer.GreaterThan:  30,
	lexer.LessEqual:    30,
	lexer.GreaterEqual: 30,

	lexer.DoubleEquals: 25,
	lexer.BangEquals:   25,

	lexer.DoubleAmpersand: 20,

	lexer.DoublePipe: 15,

	lexer.Equals:      10,
	lexer.PlusEquals:  10,
	lexer.MinusEquals: 10,
	lexer.StarEquals:  10,
	lexer.SlashEquals: 10,
}

// rightAssociative holds the operators that bind their RHS at the same
// precedence (spec.md §4.G: "Assignment operators are right-associative;
// all others left-associative").
var rightAssociative = map[lexer.Kind]bool{
	lexer.Equals:      true,
	lexer.PlusEquals:  true,
	lexer.MinusEquals: true,
	lexer.StarEquals:  true,
	lexer.SlashEquals: true,
}

// unaryBindingPower is fixed at 50 for every unary operator (spec.md §4.G
// "Unary precedence") — higher than any binary operator except indexing
// and call, which only ever appear as postfix on an already-parsed
// primary.
const unaryBindingPower = 50

var unaryOperators = map[lexer.Kind]bool{
	lexer.Bang:       true,
	lexer.Minus:      true,
	lexer.Hash:       true,
	lexer.Asperand:   true,
	lexer.NewKeyword: true,
}

func isAssignmentOp(k lexer.Kind) bool {
	return rightAssociative[k]
}
