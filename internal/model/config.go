// Package model defines the data structures for file rendering.
package model

// PagingMode controls whether output is sent through a pager.
type PagingMode int

const (
	// PagingAuto pages only when standard output is an interactive terminal.
	PagingAuto PagingMode = iota
	// PagingAlways pages unconditionally.
	PagingAlways
	// PagingNever writes directly to standard output.
	PagingNever
)

// StyleComponents selects which decorations the interactive printer draws.
type StyleComponents struct {
	Header  bool
	Numbers bool
	Changes bool
	Snip    bool
	Grid    bool
}

// Config holds the per-run rendering configuration. It is immutable for the
// whole run; the controller clones it per input to carry the derived
// LineNumberWidth.
type Config struct {
	Style   StyleComponents
	Visible VisibleLines
	Paging  PagingMode

	// Pager is the pager command line. Empty means discover one from the
	// environment; "builtin" selects the built-in viewport pager.
	Pager string

	// LoopThrough selects the pass-through printer: raw bytes, no
	// highlighting, no decorations.
	LoopThrough bool

	// Theme is the highlighting style name.
	Theme string

	// Language forces a lexer instead of detecting one per input.
	Language string

	TabWidth      int
	TerminalWidth int

	// LineNumberWidth is derived per input from its size and line count.
	// It is only meaningful on the per-input copy of the configuration.
	LineNumberWidth int
}
