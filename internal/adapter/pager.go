package adapter

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// builtinPager buffers rendered output and pages it through a Bubble Tea
// viewport once the run finishes. It stands in when no external pager is
// wanted or available.
type builtinPager struct {
	buf    bytes.Buffer
	stdout *os.File
	run    func(content string, stdout *os.File) error
}

func newBuiltinPager(stdout *os.File) *builtinPager {
	return &builtinPager{stdout: stdout, run: runPagerProgram}
}

func (b *builtinPager) Writer() io.Writer {
	return &b.buf
}

func (b *builtinPager) IsPager() bool {
	return true
}

func (b *builtinPager) Close() error {
	if !IsTTY(b.stdout) {
		_, err := b.stdout.Write(b.buf.Bytes())
		return err
	}

	return b.run(b.buf.String(), b.stdout)
}

func runPagerProgram(content string, stdout *os.File) error {
	program := tea.NewProgram(
		newPagerModel(content),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

var pagerStatusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("7"))

type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
}

func newPagerModel(content string) *pagerModel {
	return &pagerModel{content: content}
}

// Init implements tea.Model.
func (p *pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-1)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

// View implements tea.Model.
func (p *pagerModel) View() string {
	if !p.ready {
		return ""
	}

	status := fmt.Sprintf(" %3.f%%  q to quit ", p.viewport.ScrollPercent()*100)

	return p.viewport.View() + "\n" + pagerStatusStyle.Render(status)
}
