package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michabs/glance/internal/adapter"
	m "github.com/michabs/glance/internal/model"
)

func TestSimplePrinter(t *testing.T) {
	printer := NewSimplePrinter()

	t.Run("forwards raw in-range lines", func(t *testing.T) {
		var buf bytes.Buffer

		if err := printer.PrintLine(false, &buf, 1, []byte("raw\tdata\n")); err != nil {
			t.Fatal(err)
		}

		if buf.String() != "raw\tdata\n" {
			t.Fatalf("output = %q", buf.String())
		}
	})

	t.Run("drops out-of-range lines", func(t *testing.T) {
		var buf bytes.Buffer

		if err := printer.PrintLine(true, &buf, 1, []byte("hidden\n")); err != nil {
			t.Fatal(err)
		}

		if buf.Len() != 0 {
			t.Fatalf("out-of-range line produced output: %q", buf.String())
		}
	})

	t.Run("no header, snip or footer", func(t *testing.T) {
		var buf bytes.Buffer

		opened := adapter.NewOpenedInput(m.StdinInput(), -1, strings.NewReader(""))

		_ = printer.PrintHeader(&buf, opened, true)
		_ = printer.PrintSnip(&buf)
		_ = printer.PrintFooter(&buf, opened)

		if buf.Len() != 0 {
			t.Fatalf("decorations produced output: %q", buf.String())
		}
	})
}

func interactiveConfig() *m.Config {
	return &m.Config{
		Style:           m.StyleComponents{Header: true, Numbers: true, Grid: true, Snip: true, Changes: true},
		Theme:           "monokai",
		TabWidth:        4,
		LineNumberWidth: 4,
		TerminalWidth:   40,
	}
}

func newInteractive(t *testing.T, cfg *m.Config, content string, changes m.LineChanges) (*InteractivePrinter, *adapter.OpenedInput) {
	t.Helper()

	opened := adapter.NewOpenedInput(m.FileInput("sample.txt"), int64(len(content)), strings.NewReader(content))

	printer, err := NewInteractivePrinter(cfg, adapter.NewHighlightAssets(), opened, changes)
	if err != nil {
		t.Fatalf("NewInteractivePrinter() error: %v", err)
	}

	return printer, opened
}

func TestInteractivePrinter_UnknownThemeFails(t *testing.T) {
	cfg := interactiveConfig()
	cfg.Theme = "no-such-theme"

	opened := adapter.NewOpenedInput(m.FileInput("sample.txt"), -1, strings.NewReader("x\n"))

	if _, err := NewInteractivePrinter(cfg, adapter.NewHighlightAssets(), opened, nil); err == nil {
		t.Fatal("construction succeeded with an unknown theme")
	}
}

func TestInteractivePrinter_PrintLine(t *testing.T) {
	printer, _ := newInteractive(t, interactiveConfig(), "hello world\n", nil)

	t.Run("in range carries number and content", func(t *testing.T) {
		var buf bytes.Buffer

		if err := printer.PrintLine(false, &buf, 7, []byte("hello world\n")); err != nil {
			t.Fatal(err)
		}

		out := buf.String()

		if !strings.Contains(out, "hello world") {
			t.Fatalf("output %q does not contain the line content", out)
		}

		if !strings.Contains(out, "7") {
			t.Fatalf("output %q does not contain the line number", out)
		}
	})

	t.Run("out of range is silent", func(t *testing.T) {
		var buf bytes.Buffer

		if err := printer.PrintLine(true, &buf, 8, []byte("hidden\n")); err != nil {
			t.Fatal(err)
		}

		if buf.Len() != 0 {
			t.Fatalf("out-of-range line produced output: %q", buf.String())
		}
	})
}

func TestInteractivePrinter_ChangeMarkers(t *testing.T) {
	changes := m.LineChanges{1: m.ChangeAdded}
	printer, _ := newInteractive(t, interactiveConfig(), "fresh\n", changes)

	var buf bytes.Buffer

	if err := printer.PrintLine(false, &buf, 1, []byte("fresh\n")); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "+") {
		t.Fatalf("output %q is missing the added marker", buf.String())
	}
}

func TestInteractivePrinter_Header(t *testing.T) {
	printer, opened := newInteractive(t, interactiveConfig(), "content\n", nil)

	t.Run("names the input", func(t *testing.T) {
		var buf bytes.Buffer

		if err := printer.PrintHeader(&buf, opened, false); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(buf.String(), "sample.txt") {
			t.Fatalf("header %q does not name the input", buf.String())
		}
	})

	t.Run("padding inserts a blank line", func(t *testing.T) {
		var buf bytes.Buffer

		if err := printer.PrintHeader(&buf, opened, true); err != nil {
			t.Fatal(err)
		}

		if !strings.HasPrefix(buf.String(), "\n") {
			t.Fatalf("header %q does not start with padding", buf.String())
		}
	})
}

func TestInteractivePrinter_EmptyInputHeader(t *testing.T) {
	printer, opened := newInteractive(t, interactiveConfig(), "", nil)

	var buf bytes.Buffer

	if err := printer.PrintHeader(&buf, opened, false); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "<EMPTY>") {
		t.Fatalf("header %q does not flag the empty input", buf.String())
	}
}

func TestInteractivePrinter_Snip(t *testing.T) {
	printer, _ := newInteractive(t, interactiveConfig(), "content\n", nil)

	var buf bytes.Buffer

	if err := printer.PrintSnip(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "8<") {
		t.Fatalf("snip %q is missing the marker", buf.String())
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no tabs unchanged", "plain\n", "plain\n"},
		{"tab at start", "\tx\n", "    x\n"},
		{"tab to next stop", "ab\tc\n", "ab  c\n"},
		{"tab after full stop", "abcd\te\n", "abcd    e\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(expandTabs([]byte(tt.in), 4)); got != tt.want {
				t.Fatalf("expandTabs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
