package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/michabs/glance/internal/adapter"
	"github.com/michabs/glance/internal/domain"
	m "github.com/michabs/glance/internal/model"
)

var errorPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// ErrorHandler consumes a per-input failure together with the writer errors
// should go to.
type ErrorHandler func(err error, w io.Writer)

// DefaultErrorHandler prints the error with a colored prefix.
func DefaultErrorHandler(err error, w io.Writer) {
	fmt.Fprintf(w, "%s %v\n", errorPrefixStyle.Render("[glance error]:"), err)
}

// DestinationFactory opens the output destination for a run.
type DestinationFactory func(mode m.PagingMode, pager string, stdout *os.File) (adapter.Destination, error)

// Controller renders a batch of inputs to a single destination. Inputs are
// processed strictly one after another; a failing input never aborts its
// siblings.
type Controller struct {
	config *m.Config
	assets *adapter.HighlightAssets
	opener adapter.InputOpener
	differ adapter.ChangeMapper

	stdout  *os.File
	stderr  io.Writer
	stdin   io.Reader
	newDest DestinationFactory
}

// New creates a controller wired to the process streams.
func New(config *m.Config, assets *adapter.HighlightAssets, opener adapter.InputOpener, differ adapter.ChangeMapper) *Controller {
	return &Controller{
		config:  config,
		assets:  assets,
		opener:  opener,
		differ:  differ,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		stdin:   os.Stdin,
		newDest: adapter.NewDestination,
	}
}

// Run renders all inputs, reporting errors through the default handler.
// The returned bool is true iff every input rendered without error.
func (c *Controller) Run(inputs []m.Input) (bool, error) {
	return c.RunWithErrorHandler(inputs, DefaultErrorHandler)
}

// RunWithErrorHandler renders all inputs with a custom per-input error
// handler. Only destination construction is fatal; per-input failures are
// handed to the handler and reflected in the bool result.
func (c *Controller) RunWithErrorHandler(inputs []m.Input, handle ErrorHandler) (bool, error) {
	// Never launch a pager when there is nothing real to page.
	mode := c.config.Paging
	if mode != m.PagingNever && !anyInputExists(inputs) {
		mode = m.PagingNever
	}

	dest, err := c.newDest(mode, c.config.Pager, c.stdout)
	if err != nil {
		return false, err
	}
	defer func() { _ = dest.Close() }()

	// A pager cannot alias a file input, so the loop check only applies to
	// direct output.
	var destID *adapter.Identifier
	if !dest.IsPager() {
		if id, ok := adapter.IdentifierFor(c.stdout); ok {
			destID = &id
		}
	}

	writer := dest.Writer()
	noErrors := true

	for i, input := range inputs {
		// Stdin is only consumed by the stdin input itself; file inputs get
		// an empty stand-in so the live stream is never touched.
		stdin := c.stdin
		if !input.IsStdin() {
			stdin = bytes.NewReader(nil)
		}

		if err := c.printInput(input, writer, stdin, destID, i == 0); err != nil {
			if dest.IsPager() {
				handle(err, writer)
			} else {
				handle(err, c.stderr)
			}

			noErrors = false
		}
	}

	return noErrors, nil
}

func anyInputExists(inputs []m.Input) bool {
	for _, input := range inputs {
		if input.IsStdin() {
			return true
		}

		if _, err := os.Stat(string(input.Path)); err == nil {
			return true
		}
	}

	return false
}

func (c *Controller) printInput(input m.Input, w io.Writer, stdin io.Reader, destID *adapter.Identifier, isFirst bool) error {
	opened, err := c.opener.Open(input, stdin, destID)
	if err != nil {
		return err
	}
	defer func() { _ = opened.Close() }()

	var changes m.LineChanges

	if c.config.Visible.DiffMode() || (!c.config.LoopThrough && c.config.Style.Changes) {
		switch {
		case input.Kind == m.InputFile:
			changes, err = c.differ.ChangeMap(input.Path)
			if err != nil {
				changes = nil
			}

			// Files without modifications produce no output in diff mode.
			if c.config.Visible.DiffMode() && len(changes) == 0 {
				return nil
			}

		case c.config.Visible.DiffMode():
			// Non-file inputs cannot be diffed.
			return nil
		}
	}

	// Per-input copy; the base configuration stays immutable for the run.
	config := *c.config
	config.LineNumberWidth = domain.LineNumberWidth(opened.Size, opened.LineCount)

	var printer Printer
	if config.LoopThrough {
		printer = NewSimplePrinter()
	} else {
		printer, err = NewInteractivePrinter(&config, c.assets, opened, changes)
		if err != nil {
			return err
		}
	}

	return c.printFile(printer, w, opened, !isFirst, changes)
}

func (c *Controller) printFile(printer Printer, w io.Writer, input *adapter.OpenedInput, addHeaderPadding bool, changes m.LineChanges) error {
	if len(input.Reader().FirstLine()) != 0 || c.config.Style.Header {
		if err := printer.PrintHeader(w, input, addHeaderPadding); err != nil {
			return err
		}
	}

	if len(input.Reader().FirstLine()) != 0 {
		ranges := domain.ResolveVisibleLines(c.config.Visible, changes)

		if err := c.printFileRanges(printer, w, input.Reader(), ranges); err != nil {
			return err
		}
	}

	return printer.PrintFooter(w, input)
}

func (c *Controller) printFileRanges(printer Printer, w io.Writer, reader *adapter.LineReader, ranges m.LineRanges) error {
	checker := domain.NewRangeChecker(ranges)

	var lineBuffer []byte

	lineNumber := 1
	firstRange := true
	midRange := false
	styleSnip := c.config.Style.Snip

	for {
		ok, err := reader.ReadLine(&lineBuffer)
		if err != nil {
			return err
		}

		if !ok {
			break
		}

		switch checker.Check(lineNumber) {
		case m.BeforeOrBetweenRanges:
			// Still call the printer so the highlighter sees the line, but
			// flag it out of range.
			if err := printer.PrintLine(true, w, lineNumber, lineBuffer); err != nil {
				return err
			}

			midRange = false

		case m.InRange:
			if styleSnip {
				if firstRange {
					firstRange = false
					midRange = true
				} else if !midRange {
					midRange = true

					if err := printer.PrintSnip(w); err != nil {
						return err
					}
				}
			}

			if err := printer.PrintLine(false, w, lineNumber, lineBuffer); err != nil {
				return err
			}

		case m.AfterLastRange:
			// No later line can match; stop reading this input.
			return nil
		}

		lineNumber++
		lineBuffer = lineBuffer[:0]
	}

	return nil
}
