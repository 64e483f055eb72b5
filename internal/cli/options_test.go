// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func mustParse(t *testing.T, tool Tool, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewFlagSet(tool), args, tool)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestBareFileArg(t *testing.T) {
	o := mustParse(t, Faidx, "ref.fa")
	if o.File != "ref.fa" || len(o.Regions) != 0 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestRegionsAfterFlags(t *testing.T) {
	o := mustParse(t, Faidx, "--length", "10", "ref.fa", "chr1", "chr2:1-5")
	if o.Length != 10 || o.File != "ref.fa" || len(o.Regions) != 2 || o.Regions[1] != "chr2:1-5" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, Faidx, "ref.fa", "chr1", "-c", "--output", "out.fa")
	if !o.Continue || o.Output != "out.fa" || o.File != "ref.fa" || len(o.Regions) != 1 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestShortAliases(t *testing.T) {
	o := mustParse(t, Faidx, "-o", "out.fa", "-n", "7", "-r", "regs.txt", "-f", "ref.fa")
	if o.Output != "out.fa" || o.Length != 7 || o.RegionFile != "regs.txt" || !o.Fastq {
		t.Errorf("bad parse %+v", o)
	}
}

func TestFqidxHasNoFastqFlag(t *testing.T) {
	fs := NewFlagSet(Fqidx)
	fs.SetOutput(discard{})
	_, err := ParseArgs(fs, []string{"-f", "reads.fq"}, Fqidx)
	if err == nil {
		t.Fatal("fqidx must reject --fastq")
	}
}

func TestHelp(t *testing.T) {
	fs := NewFlagSet(Faidx)
	fs.SetOutput(discard{})
	_, err := ParseArgs(fs, []string{"-h"}, Faidx)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestUnknownFlag(t *testing.T) {
	fs := NewFlagSet(Faidx)
	fs.SetOutput(discard{})
	_, err := ParseArgs(fs, []string{"--bogus", "ref.fa"}, Faidx)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want parse error, got %v", err)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
