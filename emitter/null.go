/*
File    : viperc/emitter/null.go
Package : emitter
*/

package emitter

import (
	"fmt"
	"io"

	"github.com/viperlang/viperc/scope"
)

// Null is a reference Emitter that performs no code generation: it writes
// a one-line description of each node it is asked to emit to Out (if
// set) and returns a non-nil placeholder Value so callers can distinguish
// "emitted, trivially" from "failed". Neither cmd/viperc nor any test in
// this module drives it; the CLI stops after parsing and diagnostics.
type Null struct {
	Out     io.Writer
	storage map[*scope.Symbol]any
}

// NewNull creates a Null emitter. out may be nil to suppress the
// description trace entirely.
func NewNull(out io.Writer) *Null {
	return &Null{Out: out, storage: make(map[*scope.Symbol]any)}
}

type placeholderValue struct {
	desc string
}

func (n *Null) Emit(node any, builder Builder, module Module, sc *scope.Scope) Value {
	desc := fmt.Sprintf("%T", node)
	if n.Out != nil {
		fmt.Fprintf(n.Out, "emit: %s\n", desc)
	}
	return placeholderValue{desc: desc}
}

func (n *Null) SetStorage(sym *scope.Symbol, handle any) {
	n.storage[sym] = handle
}

func (n *Null) GetStorage(sym *scope.Symbol) (any, bool) {
	h, ok := n.storage[sym]
	return h, ok
}

var _ Emitter = (*Null)(nil)
