// Package cmd provides the root command and CLI setup for glance.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/michabs/glance/internal/adapter"
	"github.com/michabs/glance/internal/controller"
	m "github.com/michabs/glance/internal/model"
)

var assets *adapter.HighlightAssets
var opener adapter.InputOpener
var differ adapter.ChangeMapper

func init() {
	assets = adapter.NewHighlightAssets()
	opener = adapter.NewInputOpener()
	differ = adapter.NewGitChangeMapper()
}

var plainFlag bool
var numberFlag bool
var lineRangeFlags []string
var diffFlag bool
var diffContextFlag int
var styleFlag string
var pagingFlag string
var pagerFlag string
var themeFlag string
var languageFlag string
var tabsFlag int

// errRenderFailed signals a partially failed run; the per-input errors were
// already reported, so Execute only needs the exit status.
var errRenderFailed = errors.New("some inputs could not be rendered")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glance [files...]",
		Short: "A cat clone with syntax highlighting and git integration",
		Long: `Glance prints files (or standard input) with syntax highlighting, line
numbers, git modification markers and automatic paging.

Visibility can be restricted to explicit line ranges or, with --diff, to the
lines around uncommitted git modifications. Non-contiguous visible blocks are
separated by a snip marker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := buildConfig()
			if err != nil {
				return err
			}

			ctrl := controller.New(config, assets, opener, differ)

			ok, err := ctrl.Run(buildInputs(args))
			if err != nil {
				return err
			}

			if !ok {
				return errRenderFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&plainFlag, "plain", "p", false, "disable all decorations and highlighting, print raw lines")
	cmd.Flags().BoolVarP(&numberFlag, "number", "n", false, "show only line numbers, no other decorations")
	cmd.Flags().StringArrayVarP(&lineRangeFlags, "line-range", "r", nil, "only print lines in N:M (can be repeated)")
	cmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "only show lines around git modifications")
	cmd.Flags().IntVar(&diffContextFlag, "diff-context", 2, "lines of context around a git modification")
	cmd.Flags().StringVar(&styleFlag, "style", "header,numbers,changes,grid,snip", "comma-separated decorations to draw")
	cmd.Flags().StringVar(&pagingFlag, "paging", "auto", "when to page output: auto, always or never")
	cmd.Flags().StringVar(&pagerFlag, "pager", "", "pager command ('builtin' for the bundled pager)")
	cmd.Flags().StringVar(&themeFlag, "theme", "monokai", "highlighting theme")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "force a language instead of detecting one")
	cmd.Flags().IntVar(&tabsFlag, "tabs", 4, "tab stop width")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRenderFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}

func buildInputs(args []string) []m.Input {
	if len(args) == 0 {
		return []m.Input{m.StdinInput()}
	}

	inputs := make([]m.Input, 0, len(args))

	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, m.StdinInput())
		} else {
			inputs = append(inputs, m.FileInput(m.Path(arg)))
		}
	}

	return inputs
}

func buildConfig() (*m.Config, error) {
	style, err := parseStyle(styleFlag)
	if err != nil {
		return nil, err
	}

	if numberFlag {
		style = m.StyleComponents{Numbers: true}
	}

	paging, err := parsePagingMode(pagingFlag)
	if err != nil {
		return nil, err
	}

	visible, err := buildVisibleLines()
	if err != nil {
		return nil, err
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	return &m.Config{
		Style:         style,
		Visible:       visible,
		Paging:        paging,
		Pager:         pagerFlag,
		LoopThrough:   plainFlag || !adapter.IsTTY(os.Stdout),
		Theme:         themeFlag,
		Language:      languageFlag,
		TabWidth:      tabsFlag,
		TerminalWidth: width,
	}, nil
}

func buildVisibleLines() (m.VisibleLines, error) {
	if diffFlag {
		return m.VisibleLinesDiffContext(diffContextFlag), nil
	}

	ranges := make([]m.LineRange, 0, len(lineRangeFlags))

	for _, s := range lineRangeFlags {
		r, err := m.ParseLineRange(s)
		if err != nil {
			return m.VisibleLines{}, err
		}

		ranges = append(ranges, r)
	}

	return m.VisibleLinesFromRanges(m.NewLineRanges(ranges)), nil
}

func parseStyle(s string) (m.StyleComponents, error) {
	var style m.StyleComponents

	for _, component := range strings.Split(s, ",") {
		switch strings.TrimSpace(component) {
		case "header":
			style.Header = true
		case "numbers":
			style.Numbers = true
		case "changes":
			style.Changes = true
		case "grid":
			style.Grid = true
		case "snip":
			style.Snip = true
		case "":
		default:
			return m.StyleComponents{}, fmt.Errorf("unknown style component %q", component)
		}
	}

	return style, nil
}

func parsePagingMode(s string) (m.PagingMode, error) {
	switch s {
	case "auto":
		return m.PagingAuto, nil
	case "always":
		return m.PagingAlways, nil
	case "never":
		return m.PagingNever, nil
	default:
		return m.PagingAuto, fmt.Errorf("unknown paging mode %q", s)
	}
}
