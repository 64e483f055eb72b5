// core/fai/load.go
package fai

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load opens a sequence file for random access under the declared format.
// A missing index is built first, as htslib's fai_load does.
func Load(path string, format Format) (*Index, error) {
	faiPath := path + IndexExt
	if _, err := os.Stat(faiPath); errors.Is(err, os.ErrNotExist) {
		if err := Build(path); err != nil {
			return nil, err
		}
	}
	byName, err := readIndex(faiPath, format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Index{f: f, format: format, byName: byName}, nil
}

// readIndex parses a .fai file: five tab-separated columns per line for
// FASTA, six for FASTQ (the extra column is the quality offset).
func readIndex(path string, format Format) (map[string]rec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	want := 5
	if format == FASTQ {
		want = 6
	}
	byName := make(map[string]rec)
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != want {
			return nil, fmt.Errorf("%s:%d: %w: expected %d columns for %s, found %d",
				path, n, ErrFormat, want, format, len(cols))
		}
		r := rec{name: cols[0]}
		if r.length, err = strconv.Atoi(cols[1]); err == nil {
			if r.offset, err = strconv.ParseInt(cols[2], 10, 64); err == nil {
				if r.lineBases, err = strconv.Atoi(cols[3]); err == nil {
					r.lineWidth, err = strconv.Atoi(cols[4])
				}
			}
		}
		if err == nil && want == 6 {
			r.qualOffset, err = strconv.ParseInt(cols[5], 10, 64)
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: malformed index line: %v", path, n, err)
		}
		byName[r.name] = r
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return byName, nil
}
