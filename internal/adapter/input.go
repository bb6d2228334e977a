package adapter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	m "github.com/michabs/glance/internal/model"
)

// InputOpener opens inputs into readable, metadata-carrying streams.
// Implementations must substitute an empty stand-in for a standard-stream
// input whose identity equals the destination, so the process never reads
// its own output.
type InputOpener interface {
	Open(input m.Input, stdin io.Reader, destination *Identifier) (*OpenedInput, error)
}

// OpenedInput is an input ready for one streaming pass.
type OpenedInput struct {
	Input m.Input

	// Size is the input's byte size, or -1 when unknown (standard stream).
	Size int64

	// LineCount is the total number of lines, or 0 when it was not counted.
	LineCount int

	reader *LineReader
	closer io.Closer
}

// NewOpenedInput wraps a raw reader as an opened input with the given
// metadata. Size is -1 when unknown.
func NewOpenedInput(input m.Input, size int64, r io.Reader) *OpenedInput {
	return &OpenedInput{Input: input, Size: size, reader: NewLineReader(r)}
}

// Reader returns the input's line reader.
func (o *OpenedInput) Reader() *LineReader {
	return o.reader
}

// Close releases the underlying file, if any.
func (o *OpenedInput) Close() error {
	if o.closer == nil {
		return nil
	}

	return o.closer.Close()
}

type localInputOpener struct{}

// NewInputOpener creates an opener backed by the local filesystem and the
// process standard input.
func NewInputOpener() InputOpener {
	return localInputOpener{}
}

func (localInputOpener) Open(input m.Input, stdin io.Reader, destination *Identifier) (*OpenedInput, error) {
	if input.IsStdin() {
		reader := stdin

		// Reading from and writing to the same stream would loop forever;
		// render nothing for this input instead.
		if destination != nil {
			if f, ok := stdin.(*os.File); ok {
				if id, ok := IdentifierFor(f); ok && id == *destination {
					reader = bytes.NewReader(nil)
				}
			}
		}

		return NewOpenedInput(input, -1, reader), nil
	}

	f, err := os.Open(string(input.Path))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", input.Path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%q: %w", input.Path, err)
	}

	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%q is a directory", input.Path)
	}

	opened := &OpenedInput{
		Input:  input,
		Size:   info.Size(),
		reader: NewLineReader(f),
		closer: f,
	}

	// The line count is only consulted for the gutter width of inputs above
	// the size threshold; counting a second pass over small files is wasted
	// work.
	if info.Size() > 1000 {
		if count, err := countLines(string(input.Path)); err == nil {
			opened.LineCount = count
		}
	}

	return opened, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	trailing := false
	buf := make([]byte, 64*1024)

	for {
		n, err := f.Read(buf)
		count += bytes.Count(buf[:n], []byte{'\n'})
		if n > 0 {
			trailing = buf[n-1] != '\n'
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return 0, err
		}
	}

	if trailing {
		count++
	}

	return count, nil
}

// LineReader yields lines including their terminators, with the first line
// read eagerly so callers can detect empty inputs before printing anything.
type LineReader struct {
	r           *bufio.Reader
	first       []byte
	firstServed bool
	err         error
}

// NewLineReader wraps r and peeks its first line.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{r: bufio.NewReader(r)}
	lr.first, lr.err = readLine(lr.r)

	return lr
}

// FirstLine returns the eagerly read first line; empty means the input holds
// no data at all.
func (lr *LineReader) FirstLine() []byte {
	return lr.first
}

// ReadLine appends the next line (terminator included) to buf, reporting
// whether a line was read. The very first call returns the peeked first
// line.
func (lr *LineReader) ReadLine(buf *[]byte) (bool, error) {
	if !lr.firstServed {
		lr.firstServed = true

		if lr.err != nil {
			return false, lr.err
		}

		if len(lr.first) == 0 {
			return false, nil
		}

		*buf = append(*buf, lr.first...)

		return true, nil
	}

	line, err := readLine(lr.r)
	if err != nil {
		return false, err
	}

	if len(line) == 0 {
		return false, nil
	}

	*buf = append(*buf, line...)

	return true, nil
}

// readLine returns the next line with its newline, an empty slice at end of
// input, or an error on a mid-stream failure.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err == io.EOF {
		return line, nil
	}

	if err != nil {
		return nil, err
	}

	return line, nil
}
