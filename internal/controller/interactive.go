package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/michabs/glance/internal/adapter"
	m "github.com/michabs/glance/internal/model"
)

const fallbackTerminalWidth = 80

var (
	headerLabelStyle = lipgloss.NewStyle().Faint(true)
	headerNameStyle  = lipgloss.NewStyle().Bold(true)
	gutterStyle      = lipgloss.NewStyle().Faint(true)
	addedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	modifiedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	removedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// InteractivePrinter is the rich variant: headers, line numbers, git change
// markers, grid decorations and syntax highlighting.
type InteractivePrinter struct {
	config    *m.Config
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
	changes   m.LineChanges
	empty     bool
}

// NewInteractivePrinter creates the rich printer for one opened input. It
// fails when the configured theme does not exist.
func NewInteractivePrinter(cfg *m.Config, assets *adapter.HighlightAssets, input *adapter.OpenedInput, changes m.LineChanges) (*InteractivePrinter, error) {
	style, err := assets.Style(cfg.Theme)
	if err != nil {
		return nil, err
	}

	path := ""
	if input.Input.Kind == m.InputFile {
		path = string(input.Input.Path)
	}

	return &InteractivePrinter{
		config:    cfg,
		lexer:     assets.Lexer(path, input.Reader().FirstLine(), cfg.Language),
		style:     style,
		formatter: assets.Formatter(),
		changes:   changes,
		empty:     len(input.Reader().FirstLine()) == 0,
	}, nil
}

// PrintHeader prints the file header and, between inputs, a padding line.
func (p *InteractivePrinter) PrintHeader(w io.Writer, input *adapter.OpenedInput, addPadding bool) error {
	if addPadding {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if !p.config.Style.Header {
		return nil
	}

	if p.config.Style.Grid {
		if err := p.rule(w); err != nil {
			return err
		}
	}

	suffix := ""
	if p.empty {
		suffix = "   <EMPTY>"
	}

	_, err := fmt.Fprintf(w, "%s%s%s\n",
		headerLabelStyle.Render("File: "),
		headerNameStyle.Render(input.Input.DisplayName()),
		suffix,
	)
	if err != nil {
		return err
	}

	if p.config.Style.Grid {
		return p.rule(w)
	}

	return nil
}

// PrintLine renders one line with its gutter. Out-of-range lines are still
// fed through the highlighter so its lexical state stays consistent across
// hidden regions, but produce no output.
func (p *InteractivePrinter) PrintLine(outOfRange bool, w io.Writer, lineNumber int, line []byte) error {
	content := expandTabs(line, p.config.TabWidth)

	if outOfRange {
		_, _ = p.lexer.Tokenise(nil, string(content))
		return nil
	}

	if _, err := io.WriteString(w, p.gutter(lineNumber)); err != nil {
		return err
	}

	return p.writeContent(w, content)
}

// PrintSnip draws the separator between discontiguous visible blocks.
func (p *InteractivePrinter) PrintSnip(w io.Writer) error {
	width := p.config.TerminalWidth
	if width <= 0 {
		width = fallbackTerminalWidth
	}

	marker := " 8< "

	fill := width - 4 - runewidth.StringWidth(marker)
	if fill < 0 {
		fill = 0
	}

	line := strings.Repeat("─", 4) + marker + strings.Repeat("─", fill)

	_, err := fmt.Fprintln(w, gutterStyle.Render(line))

	return err
}

// PrintFooter closes the grid under the last printed line.
func (p *InteractivePrinter) PrintFooter(w io.Writer, _ *adapter.OpenedInput) error {
	if p.config.Style.Grid && !p.empty {
		return p.rule(w)
	}

	return nil
}

func (p *InteractivePrinter) rule(w io.Writer) error {
	width := p.config.TerminalWidth
	if width <= 0 {
		width = fallbackTerminalWidth
	}

	_, err := fmt.Fprintln(w, gutterStyle.Render(strings.Repeat("─", width)))

	return err
}

func (p *InteractivePrinter) gutter(lineNumber int) string {
	var b strings.Builder

	if p.config.Style.Numbers {
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d", p.config.LineNumberWidth, lineNumber)))
		b.WriteByte(' ')
	}

	if p.config.Style.Changes {
		b.WriteString(p.changeMarker(lineNumber))
		b.WriteByte(' ')
	}

	if p.config.Style.Grid {
		b.WriteString(gutterStyle.Render("│"))
		b.WriteByte(' ')
	}

	return b.String()
}

func (p *InteractivePrinter) changeMarker(lineNumber int) string {
	kind, ok := p.changes[lineNumber]
	if !ok {
		return " "
	}

	switch kind {
	case m.ChangeAdded:
		return addedStyle.Render(kind.Marker())
	case m.ChangeModified:
		return modifiedStyle.Render(kind.Marker())
	default:
		return removedStyle.Render(kind.Marker())
	}
}

func (p *InteractivePrinter) writeContent(w io.Writer, content []byte) error {
	text := string(content)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	iterator, err := p.lexer.Tokenise(nil, text)
	if err != nil {
		_, werr := io.WriteString(w, text)
		return werr
	}

	return p.formatter.Format(w, p.style, iterator)
}

func expandTabs(line []byte, tabWidth int) []byte {
	if tabWidth <= 0 || !bytes.ContainsRune(line, '\t') {
		return line
	}

	out := make([]byte, 0, len(line)+tabWidth)
	col := 0

	for _, b := range line {
		if b == '\t' {
			n := tabWidth - col%tabWidth
			for range n {
				out = append(out, ' ')
			}

			col += n

			continue
		}

		out = append(out, b)

		if b == '\n' {
			col = 0
		} else {
			col++
		}
	}

	return out
}
