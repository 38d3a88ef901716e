/*
File    : viperc/diag/diag_test.go
Package : diag
*/

package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func span(start, end, line, col int) Span {
	return Span{Start: start, End: end, Line: line, Col: col}
}

func TestDiagnostics_ReportErrorSetsHadErrors(t *testing.T) {
	d := New()
	d.SetText("<test>", "x")

	assert.False(t, d.HadErrors())
	d.ReportError(span(0, 1, 1, 1), "boom")
	assert.True(t, d.HadErrors())
	assert.Len(t, d.Reports(), 1)
}

func TestDiagnostics_ReportNoteDoesNotAffectHadErrors(t *testing.T) {
	d := New()
	d.SetText("<test>", "x")

	d.ReportNote(span(0, 1, 1, 1), "declared here")
	assert.False(t, d.HadErrors())
	assert.Len(t, d.Reports(), 1)
}

func TestDiagnostics_WarningDisabledByName(t *testing.T) {
	d := New()
	d.SetText("<test>", "x")
	d.SetWarning("unused", false)

	d.ReportWarning("unused", span(0, 1, 1, 1), "unused variable")
	assert.Empty(t, d.Reports())

	d.ReportWarning("other", span(0, 1, 1, 1), "something else")
	assert.Len(t, d.Reports(), 1)
}

func TestDiagnostics_UnknownWarningNameDefaultsEnabled(t *testing.T) {
	d := New()
	d.SetText("<test>", "x")

	d.ReportWarning("never-toggled", span(0, 1, 1, 1), "fires by default")
	assert.Len(t, d.Reports(), 1)
}

func TestDiagnostics_DedupSuppressesWithinStatement(t *testing.T) {
	d := New()
	d.SetText("<test>", "x")

	d.ReportError(span(0, 1, 1, 1), "same message")
	d.ReportError(span(0, 1, 1, 1), "same message")
	assert.Len(t, d.Reports(), 1)

	d.ResetStatementDedup()
	d.ReportError(span(0, 1, 1, 1), "same message")
	assert.Len(t, d.Reports(), 2)
}

func TestDiagnostics_RenderIncludesSourceLineAndCaret(t *testing.T) {
	d := New()
	src := "let i32 x = ;\n"
	d.SetText("<test>", src)
	d.ReportError(span(12, 13, 1, 13), "expected expression")

	var buf bytes.Buffer
	d.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "<test>:1:13:")
	assert.Contains(t, out, "expected expression")
	assert.Contains(t, out, "let i32 x = ;")
	assert.Contains(t, out, "^")
}

func TestDiagnostics_CaretLineAccountsForColumnOffset(t *testing.T) {
	d := New()
	src := "abc\ndef\n"
	d.SetText("<test>", src)

	lineStart, lineEnd := d.lineBounds(5) // 'e' in "def"
	assert.Equal(t, "def", src[lineStart:lineEnd])

	underline := d.caretLine(lineStart, span(5, 6, 2, 2))
	assert.Equal(t, " ^", underline)
}
