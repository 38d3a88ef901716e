/*
File    : viperc/diag/diag.go
Package : diag
*/

// Package diag implements the compiler's diagnostic reporting: a source
// buffer, line/column lookup by scanning for the nearest surrounding
// newlines, and caret-underlined error/warning rendering.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Severity classifies a Diagnostic. Note carries supplementary context for
// another diagnostic (e.g. "struct first declared here") and is rendered
// without affecting HadErrors.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "diagnostic"
	}
}

// Span is a half-open byte range [Start, End) into the source text, plus
// the 1-based line/column of Start. Tokens and AST nodes carry a Span.
type Span struct {
	Start, End int
	Line, Col  int
}

// Diagnostic is one reported error, warning, or note.
type Diagnostic struct {
	Severity Severity
	Span     Span
	Message  string
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Diagnostics holds the source text for one compilation unit, the set of
// enabled warning names, and the reports emitted against it so far.
type Diagnostics struct {
	File string
	text string

	warnings map[string]bool
	reports  []Diagnostic

	// dedup suppresses repeated identical reports within the statement
	// currently being recovered from (spec.md §7: "no cascade spam").
	dedup map[string]bool

	errorCount int
}

// New creates an empty Diagnostics. Call SetText before reporting anything
// that needs a source line rendered.
func New() *Diagnostics {
	return &Diagnostics{
		warnings: make(map[string]bool),
		dedup:    make(map[string]bool),
	}
}

// SetText installs the source text (and owning file name) that spans in
// subsequently reported diagnostics are resolved against.
func (d *Diagnostics) SetText(file, src string) {
	d.File = file
	d.text = src
}

// SetWarning enables or disables a named warning. Unknown names are
// accepted (and simply never match a report_warning call) rather than
// rejected, per spec.md §4.A: "unknown names are ignored".
func (d *Diagnostics) SetWarning(name string, enabled bool) {
	d.warnings[name] = enabled
}

// warningEnabled reports whether a warning with the given name should be
// surfaced. A warning name never explicitly toggled is enabled by default,
// matching the "-Wno-<name> disables it" phrasing in spec.md §6 (the
// negative form being the one that needs stating implies enabled-by-default).
func (d *Diagnostics) warningEnabled(name string) bool {
	if enabled, ok := d.warnings[name]; ok {
		return enabled
	}
	return true
}

func (d *Diagnostics) dedupKey(sev Severity, span Span, message string) string {
	return fmt.Sprintf("%d:%d:%d:%s", sev, span.Start, span.End, message)
}

// ReportError records a fatal-severity diagnostic at span. Parsing is not
// aborted — the caller is expected to synchronize and continue, per
// spec.md §4.A: "Fatal-on-first-error is NOT the policy".
func (d *Diagnostics) ReportError(span Span, message string) {
	d.report(Error, span, message)
}

// ReportWarning records a named warning at span, unless that warning name
// has been disabled via SetWarning.
func (d *Diagnostics) ReportWarning(name string, span Span, message string) {
	if !d.warningEnabled(name) {
		return
	}
	d.report(Warning, span, message)
}

// ReportNote attaches a supplementary, non-fatal diagnostic to the output
// stream (e.g. pointing at a prior declaration) without affecting
// HadErrors.
func (d *Diagnostics) ReportNote(span Span, message string) {
	d.report(Note, span, message)
}

func (d *Diagnostics) report(sev Severity, span Span, message string) {
	key := d.dedupKey(sev, span, message)
	if d.dedup[key] {
		return
	}
	d.dedup[key] = true
	d.reports = append(d.reports, Diagnostic{Severity: sev, Span: span, Message: message})
	if sev == Error {
		d.errorCount++
	}
}

// ResetStatementDedup clears the duplicate-suppression window. The parser
// calls this at each statement boundary, so an identical diagnostic can
// legitimately fire again in a later, independent statement.
func (d *Diagnostics) ResetStatementDedup() {
	d.dedup = make(map[string]bool)
}

// HadErrors reports whether any Error-severity diagnostic has been
// reported. The pipeline checks this after parsing (and after type-check,
// when one exists) to decide whether to skip codegen.
func (d *Diagnostics) HadErrors() bool {
	return d.errorCount > 0
}

// Reports returns all diagnostics recorded so far, in report order.
func (d *Diagnostics) Reports() []Diagnostic {
	return d.reports
}

// Render writes every recorded diagnostic to w as
// "file:line:col: kind: message", followed by the offending source line
// and a caret underline covering the span.
func (d *Diagnostics) Render(w io.Writer) {
	for _, r := range d.reports {
		d.renderOne(w, r)
	}
}

func (d *Diagnostics) renderOne(w io.Writer, r Diagnostic) {
	sevColor := errorColor
	switch r.Severity {
	case Warning:
		sevColor = warningColor
	case Note:
		sevColor = noteColor
	}

	fmt.Fprintf(w, "%s:%d:%d: ", d.File, r.Span.Line, r.Span.Col)
	sevColor.Fprintf(w, "%s", r.Severity.String())
	fmt.Fprintf(w, ": %s\n", r.Message)

	lineStart, lineEnd := d.lineBounds(r.Span.Start)
	fmt.Fprintf(w, "%s\n", d.text[lineStart:lineEnd])

	underline := d.caretLine(lineStart, r.Span)
	caretColor.Fprintf(w, "%s\n", underline)
}

// lineBounds scans backward and forward from pos for the nearest newlines,
// returning the [start, end) byte range of the line containing pos. This
// mirrors original_source's ParserError, which walks the source buffer by
// hand rather than consulting a precomputed line index.
func (d *Diagnostics) lineBounds(pos int) (int, int) {
	start := pos
	for start > 0 && d.text[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(d.text) && d.text[end] != '\n' {
		end++
	}
	return start, end
}

func (d *Diagnostics) caretLine(lineStart int, span Span) string {
	col := span.Start - lineStart
	if col < 0 {
		col = 0
	}
	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", col) + strings.Repeat("^", width)
}
