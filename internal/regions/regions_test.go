package regions

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readAll(t *testing.T, src Source) []string {
	t.Helper()
	var out []string
	for {
		tok, err := src.Read()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		out = append(out, tok)
	}
}

func TestFromArgsOrder(t *testing.T) {
	got := readAll(t, FromArgs([]string{"chr1", "chr2:1-5", "chr3"}))
	if len(got) != 3 || got[0] != "chr1" || got[1] != "chr2:1-5" || got[2] != "chr3" {
		t.Fatalf("tokens = %v", got)
	}
}

func TestFromArgsEmpty(t *testing.T) {
	if got := readAll(t, FromArgs(nil)); len(got) != 0 {
		t.Fatalf("tokens = %v", got)
	}
}

func TestFileSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "regions.txt")
	if err := os.WriteFile(p, []byte("chr1:1-10\nchr2\r\nchr3:5-\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src, err := Open(p)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()
	got := readAll(t, src)
	want := []string{"chr1:1-10", "chr2", "chr3:5-"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFileSourceMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing region file")
	}
}
