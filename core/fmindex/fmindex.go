// core/fmindex/fmindex.go
package fmindex

import (
	"errors"
	"sort"
	"strings"
)

// Hit is one exact-match location: a record ordinal and the 0-based start
// offset of the match within that record.
type Hit struct {
	Record int
	Pos    int
}

// Records are joined by recordSep and terminated by terminator. Both bytes
// sit outside the dna5 alphabet, so a query can never match across a record
// boundary or wrap past the end of the text.
const (
	recordSep  = '#'
	terminator = '$'
)

// Index is an uncompressed FM-index over a set of records: the sorted-suffix
// permutation of the joined text, its Burrows-Wheeler transform, and full
// C/Occ rank tables. Read-only after Build; safe to share across workers.
type Index struct {
	text   string
	sa     []int
	bwt    []byte
	c      map[byte]int     // c[b]: count of symbols in text smaller than b
	ep     map[byte]int     // ep[b]: last suffix-array slot of b's range
	occ    map[byte][]int32 // occ[b][i]: count of b in bwt[0..i]
	starts []int            // text offset of each record, ascending
}

// Build constructs the index from normalized records. Fails on an empty
// record set.
func Build(records []string) (*Index, error) {
	if len(records) == 0 {
		return nil, errors.New("fmindex: no records to index")
	}

	starts := make([]int, len(records))
	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteByte(recordSep)
		}
		starts[i] = sb.Len()
		sb.WriteString(r)
	}
	sb.WriteByte(terminator)
	text := sb.String()
	n := len(text)

	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return text[sa[i]:] < text[sa[j]:]
	})

	bwt := make([]byte, n)
	for i, p := range sa {
		if p == 0 {
			bwt[i] = text[n-1]
		} else {
			bwt[i] = text[p-1]
		}
	}

	var freq [256]int
	for i := 0; i < n; i++ {
		freq[text[i]]++
	}
	c := make(map[byte]int, 8)
	ep := make(map[byte]int, 8)
	occ := make(map[byte][]int32, 8)
	sum := 0
	for s := 0; s < 256; s++ {
		if freq[s] == 0 {
			continue
		}
		b := byte(s)
		c[b] = sum
		sum += freq[s]
		ep[b] = sum - 1
		occ[b] = make([]int32, n)
	}
	for b, ranks := range occ {
		var cnt int32
		for i := 0; i < n; i++ {
			if bwt[i] == b {
				cnt++
			}
			ranks[i] = cnt
		}
	}

	return &Index{text: text, sa: sa, bwt: bwt, c: c, ep: ep, occ: occ, starts: starts}, nil
}

// match runs backward search and returns the inclusive suffix-array range of
// suffixes prefixed by pattern.
func (x *Index) match(pattern string) (int, int, bool) {
	if pattern == "" {
		return 0, 0, false
	}
	b := pattern[len(pattern)-1]
	sp, ok := x.c[b]
	if !ok {
		return 0, 0, false
	}
	ep := x.ep[b]
	for i := len(pattern) - 2; i >= 0 && sp <= ep; i-- {
		b = pattern[i]
		base, ok := x.c[b]
		if !ok {
			return 0, 0, false
		}
		sp = base + x.occAt(b, sp-1)
		ep = base + x.occAt(b, ep) - 1
	}
	if sp > ep {
		return 0, 0, false
	}
	return sp, ep, true
}

func (x *Index) occAt(b byte, i int) int {
	if i < 0 {
		return 0
	}
	return int(x.occ[b][i])
}

// Count returns the number of exact occurrences of pattern across all
// records. Empty patterns count zero.
func (x *Index) Count(pattern string) int {
	sp, ep, ok := x.match(pattern)
	if !ok {
		return 0
	}
	return ep - sp + 1
}

// Locate returns every exact-match location of pattern attributed to its
// record. k is accepted for interface compatibility with error-tolerant
// index backends but only exact search is implemented here; any k is
// treated as 0.
func (x *Index) Locate(pattern string, k int) []Hit {
	_ = k
	sp, ep, ok := x.match(pattern)
	if !ok {
		return nil
	}
	hits := make([]Hit, 0, ep-sp+1)
	for i := sp; i <= ep; i++ {
		pos := x.sa[i]
		r := sort.SearchInts(x.starts, pos+1) - 1
		hits = append(hits, Hit{Record: r, Pos: pos - x.starts[r]})
	}
	return hits
}
