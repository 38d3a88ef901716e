/*
File    : viperc/repl/repl_test.go
Package : repl
*/

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecovery_DoesNotRepeatPriorLines(t *testing.T) {
	r := New("banner", "v0", "author", "----", "MIT", "> ")

	var first bytes.Buffer
	r.executeWithRecovery(&first, "i32 x;")
	assert.Equal(t, 1, strings.Count(first.String(), "VariableDecl"))

	var second bytes.Buffer
	r.executeWithRecovery(&second, "i32 y;")
	assert.Equal(t, 1, strings.Count(second.String(), "VariableDecl"),
		"a later line must not reprint an earlier line's declarations")
	assert.NotContains(t, second.String(), "VariableDecl(i32 x)")
	assert.Contains(t, second.String(), "VariableDecl(i32 y)")
}

func TestExecuteWithRecovery_RendersDiagnosticsOnError(t *testing.T) {
	r := New("banner", "v0", "author", "----", "MIT", "> ")

	var buf bytes.Buffer
	r.executeWithRecovery(&buf, "i32 x = ;")
	assert.Contains(t, buf.String(), "error")
}

func TestExecuteWithRecovery_EachCallUsesFreshContext(t *testing.T) {
	r := New("banner", "v0", "author", "----", "MIT", "> ")

	var buf bytes.Buffer
	r.executeWithRecovery(&buf, "struct P { i32 x; };")
	assert.False(t, strings.Contains(buf.String(), "error"))

	// A second, unrelated line must compile on its own terms rather than
	// against whatever the first line left behind.
	buf.Reset()
	r.executeWithRecovery(&buf, "i32 q;")
	assert.Contains(t, buf.String(), "VariableDecl(i32 q)")
	assert.NotContains(t, buf.String(), "StructDecl")
}
