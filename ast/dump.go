/*
File    : viperc/ast/dump.go
Package : ast
*/

package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/viperlang/viperc/types"
)

// Dump writes an indented, human-readable rendering of node to w. It is a
// debugging aid used by the repl shell and by cmd/viperc --dump-ast, not
// a serialization format — there is no corresponding parser for dump
// output.
func Dump(w io.Writer, node Node) {
	dump(w, node, 0)
}

func dump(w io.Writer, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if node == nil {
		fmt.Fprintf(w, "%s<nil>\n", indent)
		return
	}

	switch n := node.(type) {
	case *IntegerLiteral:
		fmt.Fprintf(w, "%sIntegerLiteral(%d): %s\n", indent, n.Value, typeStr(n.Type))
	case *StringLiteral:
		fmt.Fprintf(w, "%sStringLiteral(%q): %s\n", indent, n.Value, typeStr(n.Type))
	case *NullptrLiteral:
		fmt.Fprintf(w, "%sNullptrLiteral: %s\n", indent, typeStr(n.Type))
	case *BoolLiteral:
		fmt.Fprintf(w, "%sBoolLiteral(%t): %s\n", indent, n.Value, typeStr(n.Type))
	case *Variable:
		fmt.Fprintf(w, "%sVariable(%s): %s\n", indent, n.Name, typeStr(n.Type))
	case *UnaryExpr:
		fmt.Fprintf(w, "%sUnaryExpr(%s): %s\n", indent, n.Op, typeStr(n.Type))
		dump(w, n.Operand, depth+1)
	case *BinaryExpr:
		fmt.Fprintf(w, "%sBinaryExpr(%s): %s\n", indent, n.Op, typeStr(n.Type))
		dump(w, n.LHS, depth+1)
		dump(w, n.RHS, depth+1)
	case *CallExpr:
		fmt.Fprintf(w, "%sCallExpr: %s\n", indent, typeStr(n.Type))
		dump(w, n.Callee, depth+1)
		for _, a := range n.Args {
			dump(w, a, depth+1)
		}
	case *IndexExpr:
		fmt.Fprintf(w, "%sIndexExpr: %s\n", indent, typeStr(n.Type))
		dump(w, n.Array, depth+1)
		dump(w, n.Index, depth+1)
	case *MemberExpr:
		fmt.Fprintf(w, "%sMemberExpr(.%s): %s\n", indent, n.FieldName, typeStr(n.Type))
		dump(w, n.Object, depth+1)
	case *ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", indent)
		dump(w, n.Expr, depth+1)
	case *ReturnStmt:
		fmt.Fprintf(w, "%sReturnStmt\n", indent)
		if n.Value != nil {
			dump(w, n.Value, depth+1)
		}
	case *VariableDecl:
		fmt.Fprintf(w, "%sVariableDecl(%s %s)\n", indent, typeStr(n.VarType), n.Name)
		if n.Init != nil {
			dump(w, n.Init, depth+1)
		}
	case *CompoundStmt:
		fmt.Fprintf(w, "%sCompoundStmt\n", indent)
		for _, c := range n.Children {
			dump(w, c, depth+1)
		}
	case *IfStmt:
		fmt.Fprintf(w, "%sIfStmt\n", indent)
		dump(w, n.Cond, depth+1)
		dump(w, n.Then, depth+1)
		if n.Else != nil {
			dump(w, n.Else, depth+1)
		}
	case *WhileStmt:
		fmt.Fprintf(w, "%sWhileStmt\n", indent)
		dump(w, n.Cond, depth+1)
		dump(w, n.Body, depth+1)
	case *Function:
		fmt.Fprintf(w, "%sFunction(%s %s)\n", indent, typeStr(n.ReturnType), n.Name)
		if n.Body != nil {
			dump(w, n.Body, depth+1)
		}
	case *ExternFunction:
		fmt.Fprintf(w, "%sExternFunction(%s %s)\n", indent, typeStr(n.ReturnType), n.Name)
	case *ImportStmt:
		fmt.Fprintf(w, "%sImportStmt(%s %s)\n", indent, typeStr(n.ReturnType), n.Name)
	case *StructDecl:
		fmt.Fprintf(w, "%sStructDecl(%s)\n", indent, typeStr(n.StructType))
	case *ClassDefinition:
		fmt.Fprintf(w, "%sClassDefinition(%s)\n", indent, n.Name)
		for _, meth := range n.Methods {
			dump(w, meth, depth+1)
		}
	case *MethodDecl:
		kind := "MethodDecl"
		if n.IsConstructor {
			kind = "ConstructorDecl"
		}
		fmt.Fprintf(w, "%s%s(%s %s): %s\n", indent, kind, typeStr(n.ReturnType), n.Name, typeStr(n.ReturnType))
		if n.Body != nil {
			dump(w, n.Body, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%T\n", indent, n)
	}
}

func typeStr(t *types.Type) string {
	if t == nil {
		return "<untyped>"
	}
	return t.String()
}
