// core/fai/build.go
package fai

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Build scans a FASTA or FASTQ file and writes its index to path + ".fai".
// The format is detected from the first record marker ('>' or '@').
// Sequence lines within a record must share one width, except the last.
func Build(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := rejectGzip(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	recs, format, err := scan(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeIndex(path+IndexExt, recs, format)
}

// rejectGzip sniffs the gzip magic bytes. A gzip stream cannot be seeked
// into, so indexing one would produce offsets the fetch path cannot use.
func rejectGzip(f *os.File) error {
	var sig [2]byte
	n, _ := io.ReadFull(f, sig[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		return errors.New("cannot index gzip-compressed files")
	}
	return nil
}

// lineReader yields lines with their starting offset and full byte width,
// terminator included. Trailing '\r' is stripped from the returned line
// but still counted in the width.
type lineReader struct {
	br  *bufio.Reader
	off int64
}

func (lr *lineReader) next() (line []byte, off int64, width int, err error) {
	raw, err := lr.br.ReadBytes('\n')
	if len(raw) == 0 {
		return nil, lr.off, 0, err
	}
	off = lr.off
	width = len(raw)
	lr.off += int64(width)
	line = bytes.TrimRight(raw, "\r\n")
	return line, off, width, nil
}

func scan(f *os.File) ([]rec, Format, error) {
	lr := &lineReader{br: bufio.NewReader(f)}
	line, off, width, err := lr.next()
	if err == io.EOF && len(line) == 0 {
		return nil, FASTA, errors.New("empty file")
	}
	if err != nil && len(line) == 0 {
		return nil, FASTA, err
	}
	switch {
	case len(line) > 0 && line[0] == '>':
		recs, err := scanFasta(lr, line, off, width)
		return recs, FASTA, err
	case len(line) > 0 && line[0] == '@':
		recs, err := scanFastq(lr, line, off, width)
		return recs, FASTQ, err
	}
	return nil, FASTA, errors.New("unrecognized sequence file format")
}

// headerName extracts the sequence name from a header line: everything
// between the record marker and the first whitespace.
func headerName(line []byte) (string, error) {
	fields := bytes.Fields(line[1:])
	if len(fields) == 0 {
		return "", errors.New("malformed header line")
	}
	return string(fields[0]), nil
}

func scanFasta(lr *lineReader, header []byte, off int64, width int) ([]rec, error) {
	var recs []rec
	seen := map[string]bool{}

	for {
		name, err := headerName(header)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate sequence name: %s", name)
		}
		seen[name] = true

		cur := rec{name: name, offset: off + int64(width)}
		short := false // a narrow line must be the last of its record
		header = nil
		for {
			line, loff, lwidth, err := lr.next()
			if err == io.EOF && len(line) == 0 {
				break
			}
			if err != nil && len(line) == 0 {
				return nil, err
			}
			if len(line) > 0 && line[0] == '>' {
				header, off, width = line, loff, lwidth
				break
			}
			if len(line) == 0 {
				short = true
				continue
			}
			if short {
				return nil, fmt.Errorf("different line length in sequence %s", name)
			}
			if cur.lineBases == 0 && cur.length == 0 {
				cur.lineBases, cur.lineWidth = len(line), lwidth
			} else if len(line) != cur.lineBases {
				if len(line) > cur.lineBases {
					return nil, fmt.Errorf("different line length in sequence %s", name)
				}
				short = true
			}
			cur.length += len(line)
		}
		recs = append(recs, cur)
		if header == nil {
			return recs, nil
		}
	}
}

func scanFastq(lr *lineReader, header []byte, off int64, width int) ([]rec, error) {
	var recs []rec
	seen := map[string]bool{}

	for {
		name, err := headerName(header)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate sequence name: %s", name)
		}
		seen[name] = true

		cur := rec{name: name, offset: off + int64(width)}
		short := false

		// Sequence lines run until the '+' separator.
		var line []byte
		var lwidth int
		for {
			line, _, lwidth, err = lr.next()
			if err != nil && len(line) == 0 {
				return nil, fmt.Errorf("truncated record %s", name)
			}
			if len(line) > 0 && line[0] == '+' {
				break
			}
			if len(line) == 0 {
				short = true
				continue
			}
			if short {
				return nil, fmt.Errorf("different line length in sequence %s", name)
			}
			if cur.lineBases == 0 && cur.length == 0 {
				cur.lineBases, cur.lineWidth = len(line), lwidth
			} else if len(line) != cur.lineBases {
				if len(line) > cur.lineBases {
					return nil, fmt.Errorf("different line length in sequence %s", name)
				}
				short = true
			}
			cur.length += len(line)
		}

		// Quality lines are length-driven: '@' is a valid quality byte,
		// so accumulate until the sequence length is matched.
		qlen := 0
		for qlen < cur.length {
			qline, qoff, _, err := lr.next()
			if err != nil && len(qline) == 0 {
				return nil, fmt.Errorf("truncated quality in record %s", name)
			}
			if cur.qualOffset == 0 {
				cur.qualOffset = qoff
			}
			qlen += len(qline)
		}
		if qlen != cur.length {
			return nil, fmt.Errorf("quality length mismatch in record %s", name)
		}
		recs = append(recs, cur)

		header, off, width, err = lr.next()
		if err == io.EOF && len(header) == 0 {
			return recs, nil
		}
		if err != nil && len(header) == 0 {
			return nil, err
		}
		if len(header) == 0 || header[0] != '@' {
			return nil, fmt.Errorf("expected '@' header after record %s", name)
		}
	}
}

func writeIndex(path string, recs []rec, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, r := range recs {
		if format == FASTQ {
			_, err = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
				r.name, r.length, r.offset, r.lineBases, r.lineWidth, r.qualOffset)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				r.name, r.length, r.offset, r.lineBases, r.lineWidth)
		}
		if err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
