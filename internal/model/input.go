package model

// Path represents a file system path.
type Path string

// InputKind distinguishes file-backed inputs from the standard stream.
type InputKind int

const (
	// InputFile is an ordinary file named on the command line.
	InputFile InputKind = iota
	// InputStdin is the process standard input.
	InputStdin
)

// Input is a named source of lines, not yet opened.
type Input struct {
	Kind InputKind
	Path Path   // only set for InputFile
	Name string // display name; defaults per kind when empty
}

// FileInput describes an ordinary file input.
func FileInput(path Path) Input {
	return Input{Kind: InputFile, Path: path, Name: string(path)}
}

// StdinInput describes the standard input stream.
func StdinInput() Input {
	return Input{Kind: InputStdin, Name: "STDIN"}
}

// IsStdin reports whether the input reads from the standard stream.
func (i Input) IsStdin() bool {
	return i.Kind == InputStdin
}

// DisplayName returns the name shown in headers and error messages.
func (i Input) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}

	if i.Kind == InputStdin {
		return "STDIN"
	}

	return string(i.Path)
}
