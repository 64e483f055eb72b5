// internal/regions/regions.go
package regions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source yields region tokens in order. Sources are single-pass and not
// restartable; Read returns io.EOF once exhausted.
type Source interface {
	Read() (string, error)
}

// FromArgs wraps positional command-line tokens.
func FromArgs(toks []string) Source {
	return &slice{toks: toks}
}

type slice struct {
	toks []string
	next int
}

func (s *slice) Read() (string, error) {
	if s.next >= len(s.toks) {
		return "", io.EOF
	}
	tok := s.toks[s.next]
	s.next++
	return tok, nil
}

// File streams region tokens from a file, one per line. Lines are handed
// over as-is apart from the stripped terminator; a malformed token
// surfaces later as a failed fetch, not here.
type File struct {
	f  *os.File
	sc *bufio.Scanner
}

// Open opens a region-list file for streaming.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f, sc: bufio.NewScanner(f)}, nil
}

func (r *File) Read() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", r.f.Name(), err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.sc.Text(), "\r"), nil
}

func (r *File) Close() error { return r.f.Close() }
