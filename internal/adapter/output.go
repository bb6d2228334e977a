package adapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "github.com/michabs/glance/internal/model"
)

// BuiltinPagerName selects the bundled viewport pager instead of an external
// command.
const BuiltinPagerName = "builtin"

// Destination is where rendered output goes: standard output, an external
// pager process, or the builtin pager.
type Destination interface {
	Writer() io.Writer
	IsPager() bool

	// Close flushes buffered output and, for pagers, blocks until the pager
	// finishes.
	Close() error
}

// NewDestination selects and opens the output destination. PagingAuto pages
// only when stdout is an interactive terminal. Failure to start a pager is
// fatal to the run and propagates.
func NewDestination(mode m.PagingMode, pager string, stdout *os.File) (Destination, error) {
	page := mode == m.PagingAlways || (mode == m.PagingAuto && IsTTY(stdout))
	if !page {
		return newDirectDestination(stdout), nil
	}

	command := resolvePager(pager)
	if command == BuiltinPagerName {
		return newBuiltinPager(stdout), nil
	}

	return startPagerProcess(command, stdout)
}

func resolvePager(flag string) string {
	if flag != "" {
		return flag
	}

	if v := os.Getenv("GLANCE_PAGER"); v != "" {
		return v
	}

	if v := os.Getenv("PAGER"); v != "" {
		return v
	}

	return "less"
}

type directDestination struct {
	w *bufio.Writer
}

func newDirectDestination(w io.Writer) *directDestination {
	return &directDestination{w: bufio.NewWriter(w)}
}

func (d *directDestination) Writer() io.Writer {
	return d.w
}

func (d *directDestination) IsPager() bool {
	return false
}

func (d *directDestination) Close() error {
	return d.w.Flush()
}

type pagerProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func startPagerProcess(command string, stdout *os.File) (*pagerProcess, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty pager command")
	}

	path, err := exec.LookPath(parts[0])
	if err != nil {
		return nil, fmt.Errorf("could not start pager %q: %w", parts[0], err)
	}

	args := parts[1:]
	if filepath.Base(parts[0]) == "less" && len(args) == 0 {
		// Raw colors, quit on one screen, keep the screen contents.
		args = []string{"-R", "-F", "-X"}
	}

	cmd := exec.Command(path, args...)
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("could not start pager %q: %w", parts[0], err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start pager %q: %w", parts[0], err)
	}

	return &pagerProcess{cmd: cmd, stdin: stdin}, nil
}

func (p *pagerProcess) Writer() io.Writer {
	return p.stdin
}

func (p *pagerProcess) IsPager() bool {
	return true
}

func (p *pagerProcess) Close() error {
	if err := p.stdin.Close(); err != nil {
		_ = p.cmd.Wait()
		return err
	}

	return p.cmd.Wait()
}
