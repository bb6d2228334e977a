package adapter

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	m "github.com/michabs/glance/internal/model"
)

// ChangeMapper produces the per-line change kinds of a file relative to its
// source-control state. A nil map with a nil error means the file is not
// trackable (outside a repository, untracked, or unreadable) and must be
// treated as an empty diff, never as a failure.
type ChangeMapper interface {
	ChangeMap(path m.Path) (m.LineChanges, error)
}

type gitChangeMapper struct{}

// NewGitChangeMapper creates a ChangeMapper that diffs the working copy
// against the git index.
func NewGitChangeMapper() ChangeMapper {
	return gitChangeMapper{}
}

func (gitChangeMapper) ChangeMap(path m.Path) (m.LineChanges, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, nil
	}

	dir := filepath.Dir(abs)

	top, err := runGit(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, nil
	}

	rel, err := filepath.Rel(strings.TrimSpace(top), abs)
	if err != nil {
		return nil, nil
	}

	// The staged blob; falls back cleanly for untracked files.
	old, err := runGit(dir, "show", ":0:"+filepath.ToSlash(rel))
	if err != nil {
		return nil, nil
	}

	current, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil
	}

	return ChangesBetween(old, string(current)), nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// ChangesBetween computes the change kind of every line of newText relative
// to oldText. Inserted lines are marked added, insertions paired with
// deletions are marked modified, and a pure deletion marks the line that now
// sits directly below the removed block.
func ChangesBetween(oldText, newText string) m.LineChanges {
	dmp := diffmatchpatch.New()

	// Diff on whole lines: each distinct line becomes one rune.
	oldRunes, newRunes, _ := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	changes := m.LineChanges{}
	line := 1
	deleted := 0

	for _, d := range diffs {
		count := utf8.RuneCountInString(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			deleted += count

		case diffmatchpatch.DiffInsert:
			for range count {
				if deleted > 0 {
					changes[line] = m.ChangeModified
					deleted--
				} else {
					changes[line] = m.ChangeAdded
				}

				line++
			}

		case diffmatchpatch.DiffEqual:
			if deleted > 0 {
				if _, marked := changes[line]; !marked {
					changes[line] = m.ChangeRemovedAbove
				}

				deleted = 0
			}

			line += count
		}
	}

	// Deletion at the very end of the file.
	if deleted > 0 {
		if _, marked := changes[line]; !marked {
			changes[line] = m.ChangeRemovedAbove
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return changes
}
