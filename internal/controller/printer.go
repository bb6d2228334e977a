// Package controller drives the rendering of inputs: it selects a
// destination, opens each input, filters visible lines and streams them
// through a printer.
package controller

import (
	"io"

	"github.com/michabs/glance/internal/adapter"
)

// Printer renders one opened input. The controller calls the hooks in
// order: header, then every line in increasing line-number order, then the
// footer. Lines flagged out of range must not produce visible output, but a
// printer may still consume them to keep internal highlighting state
// consistent across hidden regions.
type Printer interface {
	PrintHeader(w io.Writer, input *adapter.OpenedInput, addPadding bool) error
	PrintLine(outOfRange bool, w io.Writer, lineNumber int, line []byte) error
	PrintSnip(w io.Writer) error
	PrintFooter(w io.Writer, input *adapter.OpenedInput) error
}
