// internal/writers/sink.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Sink is the single output destination for emitted records: the process
// stdout by default, or a user-supplied file.
type Sink struct {
	*bufio.Writer
	file *os.File
}

// OpenSink validates and opens the output destination. An empty path
// selects stdout. A destination that aliases the input sequence file is
// rejected before anything is written.
func OpenSink(stdout io.Writer, path, input string) (*Sink, error) {
	if path == "" {
		return &Sink{Writer: bufio.NewWriter(stdout)}, nil
	}
	if path == input {
		return nil, fmt.Errorf("same input/output: %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for writing: %v", path, err)
	}
	return &Sink{Writer: bufio.NewWriter(f), file: f}, nil
}

// Close flushes buffered records and closes a user-supplied file; the
// process stdout is left open.
func (s *Sink) Close() error {
	err := s.Flush()
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
