// core/search/suffix.go
package search

import (
	"fmt"
	"math"
	"sort"
)

// SuffixArray holds a text together with the permutation of its suffix start
// positions in lexicographic suffix order. Immutable after construction and
// safe for concurrent readers.
type SuffixArray struct {
	text string
	sa   []uint32
}

// BuildSuffixArray sorts all suffix start positions of text. Entries are
// fixed-width uint32, so texts past that range are rejected.
func BuildSuffixArray(text string) (*SuffixArray, error) {
	if int64(len(text)) > math.MaxUint32 {
		return nil, fmt.Errorf("search: text length %d exceeds uint32 suffix entries", len(text))
	}
	sa := make([]uint32, len(text))
	for i := range sa {
		sa[i] = uint32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return text[sa[i]:] < text[sa[j]:]
	})
	return &SuffixArray{text: text, sa: sa}, nil
}

// Len returns the number of indexed suffixes.
func (s *SuffixArray) Len() int { return len(s.sa) }

// prefix returns the suffix at slot i truncated to at most m characters, so
// range queries compare bounded-length substrings rather than full suffixes.
func (s *SuffixArray) prefix(i, m int) string {
	pos := int(s.sa[i])
	end := pos + m
	if end > len(s.text) {
		end = len(s.text)
	}
	return s.text[pos:end]
}

// Count returns the number of occurrences of pattern in the indexed text via
// two binary searches: the first slot whose suffix is >= pattern, then the
// first slot past it whose length-|P| prefix exceeds pattern. Returns 0 for
// an empty pattern.
func (s *SuffixArray) Count(pattern string) int {
	if pattern == "" {
		return 0
	}
	m := len(pattern)
	lo := sort.Search(len(s.sa), func(i int) bool {
		return s.prefix(i, m) >= pattern
	})
	hi := lo + sort.Search(len(s.sa)-lo, func(i int) bool {
		return s.prefix(lo+i, m) > pattern
	})
	return hi - lo
}
