// internal/emit/emit.go
package emit

import (
	"fmt"
	"io"

	"faidx-core/fai"
)

// DefaultWrap is the body line width used when the caller supplies none,
// or an invalid one.
const DefaultWrap = 60

var newline = []byte{'\n'}

// Writer emits records for one run. Record bytes go to out; warnings
// about suspect regions go to diag, prefixed with the tool name.
type Writer struct {
	out    io.Writer
	diag   io.Writer
	tool   string
	wrap   int
	format fai.Format
}

func New(out, diag io.Writer, tool string, wrap int, format fai.Format) *Writer {
	if wrap < 1 {
		wrap = DefaultWrap
	}
	return &Writer{out: out, diag: diag, tool: tool, wrap: wrap, format: format}
}

// Record writes one complete record: header line, wrapped bases and, for
// FASTQ, the '+' separator followed by the wrapped quality string. qual
// is ignored for FASTA. A zero-length fetch and a fetch shorter than the
// token's explicit span are warned about but still written in full.
func (w *Writer) Record(name string, seq, qual []byte) error {
	if len(seq) == 0 {
		fmt.Fprintf(w.diag, "%s: zero length sequence: %s\n", w.tool, name)
	} else if _, beg, end, ok := fai.ParseRegion(name); ok && end < fai.MaxEnd && len(seq) != end-beg {
		fmt.Fprintf(w.diag, "%s: truncated sequence: %s\n", w.tool, name)
	}

	marker := ">"
	if w.format == fai.FASTQ {
		marker = "@"
	}
	if _, err := fmt.Fprintf(w.out, "%s%s\n", marker, name); err != nil {
		return err
	}
	if err := w.wrapped(seq); err != nil {
		return err
	}
	if w.format == fai.FASTQ {
		if _, err := io.WriteString(w.out, "+\n"); err != nil {
			return err
		}
		return w.wrapped(qual)
	}
	return nil
}

// wrapped writes b in newline-terminated chunks of at most wrap bytes.
// Zero-length input writes no body lines.
func (w *Writer) wrapped(b []byte) error {
	for off := 0; off < len(b); off += w.wrap {
		end := off + w.wrap
		if end > len(b) {
			end = len(b)
		}
		if _, err := w.out.Write(b[off:end]); err != nil {
			return err
		}
		if _, err := w.out.Write(newline); err != nil {
			return err
		}
	}
	return nil
}
