// core/fai/fai.go
package fai

import (
	"errors"
	"os"
)

// Format declares how an indexed sequence file is laid out.
type Format int

const (
	FASTA Format = iota
	FASTQ
)

func (f Format) String() string {
	if f == FASTQ {
		return "FASTQ"
	}
	return "FASTA"
}

// IndexExt is appended to a sequence file path to name its index.
const IndexExt = ".fai"

var (
	// ErrNotFound reports a region whose sequence name is not in the index.
	ErrNotFound = errors.New("sequence not found")

	// ErrFormat reports an index whose layout does not match the declared
	// format, or a quality fetch against a FASTA index.
	ErrFormat = errors.New("index format mismatch")
)

// rec is one indexed sequence.
type rec struct {
	name       string
	length     int
	offset     int64 // file offset of the first base
	lineBases  int   // bases per full sequence line
	lineWidth  int   // bytes per full sequence line, terminator included
	qualOffset int64 // file offset of the first quality byte (FASTQ only)
}

// Index provides random access to one indexed sequence file. It is
// read-only after Load and safe for sequential use; callers serialize
// fetches themselves.
type Index struct {
	f      *os.File
	format Format
	byName map[string]rec
}

// Format reports the layout the index was loaded under.
func (x *Index) Format() Format { return x.format }

// Close releases the underlying sequence file.
func (x *Index) Close() error { return x.f.Close() }
