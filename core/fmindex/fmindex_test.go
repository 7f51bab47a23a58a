// core/fmindex/fmindex_test.go
package fmindex

import (
	"math/rand"
	"sort"
	"testing"
)

// naiveLocate finds every alignment of pattern in each record directly.
func naiveLocate(records []string, pattern string) []Hit {
	var out []Hit
	if pattern == "" {
		return out
	}
	for r, rec := range records {
		for s := 0; s+len(pattern) <= len(rec); s++ {
			if rec[s:s+len(pattern)] == pattern {
				out = append(out, Hit{Record: r, Pos: s})
			}
		}
	}
	return out
}

func sortHits(hs []Hit) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].Record != hs[j].Record {
			return hs[i].Record < hs[j].Record
		}
		return hs[i].Pos < hs[j].Pos
	})
}

func TestBuildEmptyIsError(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Error("expected error for empty record set")
	}
}

func TestCountSingleRecord(t *testing.T) {
	x, err := Build([]string{"GATTACA"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		pattern string
		want    int
	}{
		{"ATT", 1},
		{"A", 3},
		{"GATTACA", 1},
		{"GATTACAT", 0},
		{"", 0},
		{"TT", 1},
		{"X", 0},
	}
	for _, tc := range tests {
		if got := x.Count(tc.pattern); got != tc.want {
			t.Errorf("Count(%q) = %d, want %d", tc.pattern, got, tc.want)
		}
	}
}

func TestLocateAttributesRecords(t *testing.T) {
	records := []string{"ACGTACGT", "TTACGTT", "ACACAC"}
	x, err := Build(records)
	if err != nil {
		t.Fatal(err)
	}
	got := x.Locate("ACGT", 0)
	want := naiveLocate(records, "ACGT")
	sortHits(got)
	sortHits(want)
	if len(got) != len(want) {
		t.Fatalf("Locate = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locate = %v, want %v", got, want)
		}
	}
}

func TestNoCrossRecordMatches(t *testing.T) {
	// "GT"+"AC" would form GTAC across the boundary; it must not match.
	x, err := Build([]string{"AAGT", "ACAA"})
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Count("GTAC"); got != 0 {
		t.Errorf("cross-record pattern counted %d times, want 0", got)
	}
}

func TestLocateMatchesNaiveOnRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alpha := "ACGTN"
	for iter := 0; iter < 30; iter++ {
		records := make([]string, 1+r.Intn(4))
		for i := range records {
			rec := make([]byte, 1+r.Intn(60))
			for j := range rec {
				rec[j] = alpha[r.Intn(len(alpha))]
			}
			records[i] = string(rec)
		}
		x, err := Build(records)
		if err != nil {
			t.Fatal(err)
		}
		for q := 0; q < 20; q++ {
			pat := make([]byte, 1+r.Intn(5))
			for j := range pat {
				pat[j] = alpha[r.Intn(4)]
			}
			want := naiveLocate(records, string(pat))
			got := x.Locate(string(pat), 0)
			if x.Count(string(pat)) != len(want) {
				t.Fatalf("Count(%q) = %d, naive says %d (records %q)",
					pat, x.Count(string(pat)), len(want), records)
			}
			sortHits(got)
			sortHits(want)
			if len(got) != len(want) {
				t.Fatalf("Locate(%q) = %v, want %v (records %q)", pat, got, want, records)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("Locate(%q) = %v, want %v (records %q)", pat, got, want, records)
				}
			}
		}
	}
}
