package adapter

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightAssets resolves lexers, styles and the terminal formatter for the
// interactive printer.
type HighlightAssets struct{}

// NewHighlightAssets creates the asset store.
func NewHighlightAssets() *HighlightAssets {
	return &HighlightAssets{}
}

// Lexer picks a lexer for an input: an explicit override wins, then the file
// name, then content analysis of the first line. The result is always
// non-nil; unrecognized inputs get the plain-text fallback.
func (a *HighlightAssets) Lexer(path string, firstLine []byte, override string) chroma.Lexer {
	var lexer chroma.Lexer

	if override != "" {
		lexer = lexers.Get(override)
	}

	if lexer == nil && path != "" {
		lexer = lexers.Match(filepath.Base(path))
	}

	if lexer == nil && len(firstLine) > 0 {
		lexer = lexers.Analyse(string(firstLine))
	}

	if lexer == nil {
		lexer = lexers.Fallback
	}

	return chroma.Coalesce(lexer)
}

// Style looks up a highlighting style by name.
func (a *HighlightAssets) Style(name string) (*chroma.Style, error) {
	for _, known := range styles.Names() {
		if known == name {
			return styles.Get(name), nil
		}
	}

	return nil, fmt.Errorf("unknown theme %q", name)
}

// Formatter returns the ANSI formatter used for highlighted output.
func (a *HighlightAssets) Formatter() chroma.Formatter {
	return formatters.Get("terminal256")
}

// Language describes one supported language for the languages listing.
type Language struct {
	Name      string
	Aliases   []string
	Filenames []string
}

// Languages lists every registered lexer, ordered by name.
func (a *HighlightAssets) Languages() []Language {
	all := lexers.GlobalLexerRegistry.Lexers

	languages := make([]Language, 0, len(all))
	for _, lexer := range all {
		cfg := lexer.Config()
		languages = append(languages, Language{
			Name:      cfg.Name,
			Aliases:   cfg.Aliases,
			Filenames: cfg.Filenames,
		})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})

	return languages
}
