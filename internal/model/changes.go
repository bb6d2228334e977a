package model

// ChangeKind is the kind of modification a line carries relative to the
// committed version of its file.
type ChangeKind int

const (
	// ChangeAdded marks a line that does not exist in the committed version.
	ChangeAdded ChangeKind = iota
	// ChangeModified marks a line that replaced one or more committed lines.
	ChangeModified
	// ChangeRemovedAbove marks a line directly below a block of removed lines.
	ChangeRemovedAbove
)

// Marker returns the gutter symbol for the change kind.
func (k ChangeKind) Marker() string {
	switch k {
	case ChangeAdded:
		return "+"
	case ChangeModified:
		return "~"
	case ChangeRemovedAbove:
		return "‾"
	default:
		return " "
	}
}

// LineChanges maps 1-based line numbers of the working copy to their change
// kind. It is read-only input to range resolution and gutter rendering.
type LineChanges map[int]ChangeKind
