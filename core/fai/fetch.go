// core/fai/fetch.go
package fai

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fetch returns the bases selected by a region token. Out-of-range
// coordinates are clamped to the sequence, so a region reaching past the
// end yields a shorter (possibly empty) result rather than an error.
func (x *Index) Fetch(region string) ([]byte, error) {
	r, beg, end, err := x.resolve(region)
	if err != nil {
		return nil, err
	}
	return x.read(r.offset, r, beg, end)
}

// FetchQual returns the quality string selected by a region token.
// The index must have been loaded as FASTQ.
func (x *Index) FetchQual(region string) ([]byte, error) {
	if x.format != FASTQ {
		return nil, fmt.Errorf("%w: quality requested from a %s index", ErrFormat, x.format)
	}
	r, beg, end, err := x.resolve(region)
	if err != nil {
		return nil, err
	}
	return x.read(r.qualOffset, r, beg, end)
}

// resolve maps a region token to an indexed record and a clamped 0-based
// half-open interval. A token with a parsable interval suffix is split at
// its last colon; when the split name is unknown the whole token is tried
// as a literal sequence name before giving up.
func (x *Index) resolve(region string) (rec, int, int, error) {
	name, beg, end := region, 0, MaxEnd
	if i := strings.LastIndexByte(region, ':'); i >= 0 {
		if b, e, ok := parseInterval(region[i+1:]); ok {
			if _, known := x.byName[region[:i]]; known {
				name, beg, end = region[:i], b, e
			}
		}
	}
	r, ok := x.byName[name]
	if !ok {
		return rec{}, 0, 0, fmt.Errorf("%w: %s", ErrNotFound, region)
	}
	if beg > r.length {
		beg = r.length
	}
	if end > r.length {
		end = r.length
	}
	if beg > end {
		beg = end
	}
	return r, beg, end, nil
}

// read collects end-beg bases starting at the indexed base offset,
// skipping line terminators.
func (x *Index) read(base int64, r rec, beg, end int) ([]byte, error) {
	out := make([]byte, 0, end-beg)
	if end <= beg {
		return out, nil
	}
	off := base + int64(beg/r.lineBases)*int64(r.lineWidth) + int64(beg%r.lineBases)
	if _, err := x.f.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", x.f.Name(), err)
	}
	br := bufio.NewReader(x.f)
	for len(out) < end-beg {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", x.f.Name(), err)
		}
		if c == '\n' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
