package controller

import (
	"io"

	"github.com/michabs/glance/internal/adapter"
)

// SimplePrinter is the pass-through variant: raw bytes, no headers, no
// decorations, no highlighting.
type SimplePrinter struct{}

// NewSimplePrinter creates the pass-through printer.
func NewSimplePrinter() *SimplePrinter {
	return &SimplePrinter{}
}

// PrintHeader prints nothing in pass-through mode.
func (*SimplePrinter) PrintHeader(_ io.Writer, _ *adapter.OpenedInput, _ bool) error {
	return nil
}

// PrintLine forwards the raw line. Out-of-range lines are dropped entirely;
// there is no internal state to keep warm.
func (*SimplePrinter) PrintLine(outOfRange bool, w io.Writer, _ int, line []byte) error {
	if outOfRange {
		return nil
	}

	_, err := w.Write(line)

	return err
}

// PrintSnip prints nothing in pass-through mode.
func (*SimplePrinter) PrintSnip(_ io.Writer) error {
	return nil
}

// PrintFooter prints nothing in pass-through mode.
func (*SimplePrinter) PrintFooter(_ io.Writer, _ *adapter.OpenedInput) error {
	return nil
}
