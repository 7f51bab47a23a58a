// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestReadAllParsesAndNormalizes(t *testing.T) {
	p := writeTemp(t, "ref.fa", ">chr1 description\nacgt\nACGT\n>chr2\nGGxxGG\n")
	recs, err := ReadAll(p)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0] != "ACGTACGT" {
		t.Errorf("record 0 = %q, want ACGTACGT", recs[0])
	}
	if recs[1] != "GGNNGG" {
		t.Errorf("record 1 = %q, want GGNNGG (non-ACGTN mapped to N)", recs[1])
	}
}

func TestReadAllHeaderless(t *testing.T) {
	p := writeTemp(t, "raw.fa", "ACGT\nTT\n")
	recs, err := ReadAll(p)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 1 || recs[0] != "ACGTTT" {
		t.Errorf("got %v, want one record ACGTTT", recs)
	}
}

func TestReadAllEmptyIsError(t *testing.T) {
	p := writeTemp(t, "empty.fa", "")
	if _, err := ReadAll(p); err == nil {
		t.Error("expected error for file with no sequences")
	}
	p = writeTemp(t, "headers.fa", ">a\n>b\n")
	if _, err := ReadAll(p); err == nil {
		t.Error("expected error for file with headers but no sequence")
	}
	if _, err := ReadAll(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadAllGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ref.fa.gz")
	fh, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">q1\nACGTN\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadAll(p)
	if err != nil {
		t.Fatalf("ReadAll gzip: %v", err)
	}
	if len(recs) != 1 || recs[0] != "ACGTN" {
		t.Errorf("got %v, want [ACGTN]", recs)
	}
}

func TestForEachIsRestartable(t *testing.T) {
	p := writeTemp(t, "ref.fa", ">a\nAC\n>b\nGT\n")
	for pass := 0; pass < 2; pass++ {
		var got []string
		if err := ForEach(p, func(rec string) error {
			got = append(got, rec)
			return nil
		}); err != nil {
			t.Fatalf("pass %d: %v", pass, err)
		}
		if len(got) != 2 || got[0] != "AC" || got[1] != "GT" {
			t.Fatalf("pass %d: got %v", pass, got)
		}
	}
}

func TestConcat(t *testing.T) {
	if got := Concat([]string{"ACGT"}); got != "ACGT" {
		t.Errorf("single record changed: %q", got)
	}
	got := Concat([]string{"AC", "GT"})
	want := "AC" + strings.Repeat("N", separatorRun) + "GT"
	if got != want {
		t.Errorf("Concat = %q, want %q", got, want)
	}
}
