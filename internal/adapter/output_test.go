package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/michabs/glance/internal/model"
)

func tempOutputFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestNewDestination_NeverWritesDirectly(t *testing.T) {
	out := tempOutputFile(t)

	dest, err := NewDestination(m.PagingNever, "", out)
	if err != nil {
		t.Fatalf("NewDestination() error: %v", err)
	}

	if dest.IsPager() {
		t.Fatal("direct destination reported as pager")
	}

	if _, err := dest.Writer().Write([]byte("direct\n")); err != nil {
		t.Fatal(err)
	}

	if err := dest.Close(); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}

	if string(content) != "direct\n" {
		t.Fatalf("output = %q, want %q", content, "direct\n")
	}
}

func TestNewDestination_AutoWithoutTerminalSkipsPager(t *testing.T) {
	out := tempOutputFile(t)

	dest, err := NewDestination(m.PagingAuto, "", out)
	if err != nil {
		t.Fatalf("NewDestination() error: %v", err)
	}
	defer dest.Close()

	if dest.IsPager() {
		t.Fatal("auto mode paged although stdout is not a terminal")
	}
}

func TestNewDestination_AlwaysWithMissingPagerFails(t *testing.T) {
	out := tempOutputFile(t)

	_, err := NewDestination(m.PagingAlways, "definitely-not-a-pager-binary", out)
	if err == nil {
		t.Fatal("NewDestination() with an unavailable pager succeeded")
	}
}

func TestNewDestination_AlwaysRunsPagerProcess(t *testing.T) {
	out := tempOutputFile(t)

	dest, err := NewDestination(m.PagingAlways, "cat", out)
	if err != nil {
		t.Skipf("cannot start cat: %v", err)
	}

	if !dest.IsPager() {
		t.Fatal("pager destination not reported as pager")
	}

	if _, err := dest.Writer().Write([]byte("paged\n")); err != nil {
		t.Fatal(err)
	}

	if err := dest.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}

	if string(content) != "paged\n" {
		t.Fatalf("output = %q, want %q", content, "paged\n")
	}
}

func TestBuiltinPager_DumpsWhenNotATerminal(t *testing.T) {
	out := tempOutputFile(t)

	dest, err := NewDestination(m.PagingAlways, BuiltinPagerName, out)
	if err != nil {
		t.Fatalf("NewDestination() error: %v", err)
	}

	if !dest.IsPager() {
		t.Fatal("builtin pager not reported as pager")
	}

	if _, err := dest.Writer().Write([]byte("buffered\n")); err != nil {
		t.Fatal(err)
	}

	if err := dest.Close(); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}

	if string(content) != "buffered\n" {
		t.Fatalf("output = %q, want %q", content, "buffered\n")
	}
}

func TestResolvePager(t *testing.T) {
	t.Setenv("GLANCE_PAGER", "")
	t.Setenv("PAGER", "")

	if got := resolvePager("more"); got != "more" {
		t.Errorf("explicit flag: got %q", got)
	}

	if got := resolvePager(""); got != "less" {
		t.Errorf("default: got %q, want less", got)
	}

	t.Setenv("PAGER", "moar")

	if got := resolvePager(""); got != "moar" {
		t.Errorf("PAGER env: got %q, want moar", got)
	}

	t.Setenv("GLANCE_PAGER", "ov")

	if got := resolvePager(""); got != "ov" {
		t.Errorf("GLANCE_PAGER env: got %q, want ov", got)
	}
}
