/*
File    : viperc/repl/repl.go
Package repl implements the Read-Parse-Print Loop for viperc.
*/

// Package repl implements an interactive shell for inspecting how a line
// of Viper source lexes, parses, and resolves types. Unlike an evaluating
// REPL, each line is compiled fresh (there is no persistent execution
// state to carry between lines) and the result is either a rendered
// diagnostic list or a dump of the parsed declarations.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/viperlang/viperc/ast"
	"github.com/viperlang/viperc/frontend"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the static banner/prompt text shown around the interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to viperc!")
	cyanColor.Fprintf(writer, "%s\n", "Type a declaration and press enter to see how it parses")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-parse-print loop until the user exits or EOF is hit.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		// Each line is its own compilation unit (package doc above) --
		// no state, buffered or otherwise, carries over between lines.
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery compiles src (one input line) on its own and prints either
// the resulting diagnostics or a dump of the declarations just parsed.
// Panics are caught so a single malformed line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, src string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	result := frontend.Compile("<repl>", src)

	result.Ctx.Diags.Render(writer)
	if result.Ctx.Diags.HadErrors() {
		return
	}

	for _, decl := range result.Decls {
		ast.Dump(writer, decl)
	}
	fmt.Fprintln(writer)
}
