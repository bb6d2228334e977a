//go:build unix

package adapter

import (
	"os"

	"golang.org/x/sys/unix"
)

// Identifier is a stable identity for an OS-level stream target, used to
// detect an output destination aliasing one of the inputs.
type Identifier struct {
	dev uint64
	ino uint64
}

// IdentifierFor returns the identity of the file's underlying target. Only
// regular files get an identifier: character devices and pipes cannot form a
// read-write loop through the filesystem.
func IdentifierFor(f *os.File) (Identifier, bool) {
	if f == nil {
		return Identifier{}, false
	}

	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return Identifier{}, false
	}

	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return Identifier{}, false
	}

	return Identifier{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
