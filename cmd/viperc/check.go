/*
File    : viperc/cmd/viperc/check.go
Package : main
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/frontend"
)

var (
	dumpASTFlag    bool
	dumpTokensFlag bool
)

var cmdCheck = &cobra.Command{
	Use:   "check <file>...",
	Short: "lex and parse Viper source files and report diagnostics",
	Long:  `Check lexes and parses each file, printing any diagnostics. Exits non-zero if any file has an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "no input files")
			os.Exit(1)
		}

		hadErrors := false
		for _, path := range args {
			if !checkOneFile(path) {
				hadErrors = true
			}
		}
		if hadErrors {
			os.Exit(1)
		}
	},
}

func init() {
	cmdCheck.Flags().BoolVar(&dumpASTFlag, "dump-ast", false, "print an indented AST dump for each top-level declaration")
	cmdCheck.Flags().BoolVar(&dumpTokensFlag, "dump-tokens", false, "print the raw token stream")
}

// checkOneFile lexes and parses path, rendering diagnostics and any
// requested dumps. It returns false if the file had an error, matching
// the exit-code contract (0 success, 1 I/O or parse error).
func checkOneFile(path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viperc: %s: %v\n", path, err)
		return false
	}

	result := frontend.CompileWithWarnings(path, string(src), checkWarnings)

	if dumpTokensFlag {
		for _, tok := range result.Tokens {
			fmt.Printf("%s:%d:%d: %s %q\n", path, tok.Span.Line, tok.Span.Col, tok.Kind, tok.Text)
		}
	}

	result.Ctx.Diags.Render(os.Stderr)
	if result.Ctx.Diags.HadErrors() {
		return false
	}

	if dumpASTFlag {
		for _, decl := range result.Decls {
			ast.Dump(os.Stdout, decl)
		}
	}
	return true
}
