//go:build !unix

package adapter

import "os"

// Identifier is a stable identity for an OS-level stream target. On
// platforms without reliable device/inode pairs the loop check is skipped
// entirely rather than risking false positives.
type Identifier struct {
	dev uint64
	ino uint64
}

// IdentifierFor reports that no identifier is available.
func IdentifierFor(_ *os.File) (Identifier, bool) {
	return Identifier{}, false
}
