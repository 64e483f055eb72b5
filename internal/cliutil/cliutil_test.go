package cliutil

import (
	"flag"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c bool
	var n int
	fs.BoolVar(&c, "continue", false, "")
	fs.IntVar(&n, "length", 60, "")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"ref.fa", "--continue", "chr1", "--length", "10", "chr2:1-5"})
	if len(flagArgs) != 3 {
		t.Fatalf("flagArgs = %v", flagArgs)
	}
	want := []string{"ref.fa", "chr1", "chr2:1-5"}
	if len(posArgs) != len(want) {
		t.Fatalf("posArgs = %v", posArgs)
	}
	for i := range want {
		if posArgs[i] != want[i] {
			t.Errorf("posArgs[%d] = %q, want %q", i, posArgs[i], want[i])
		}
	}
}

func TestSplitDoubleDash(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"ref.fa", "--", "-weird:1-2"})
	if len(flagArgs) != 0 || len(posArgs) != 2 || posArgs[1] != "-weird:1-2" {
		t.Fatalf("split: %v / %v", flagArgs, posArgs)
	}
}
