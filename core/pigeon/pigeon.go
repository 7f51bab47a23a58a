// core/pigeon/pigeon.go
package pigeon

import "refscan-core/fmindex"

// Locator reports the exact-match locations of a pattern across a record
// set. k follows the underlying index contract (only 0 is used here).
type Locator interface {
	Locate(pattern string, k int) []fmindex.Hit
}

// candidateKey identifies one putative full-pattern alignment, so a
// candidate reached through several seeds is verified only once.
type candidateKey struct {
	record int
	start  int
}

// Count returns the number of alignments of pattern against records whose
// Hamming distance is at most errors.
//
// For errors <= 0 this degenerates to an exact count. Otherwise pattern is
// partitioned into min(errors+1, m) contiguous seeds; any alignment within
// the error budget must contain at least one mismatch-free seed, so the
// union of the seeds' exact-match locations covers all true candidates.
// Each unique candidate start is verified directly against its record.
// Malformed or out-of-range locations from the locator are skipped.
func Count(records []string, loc Locator, pattern string, errors int) int {
	if pattern == "" {
		return 0
	}
	if errors <= 0 {
		return len(loc.Locate(pattern, 0))
	}

	m := len(pattern)
	k := errors + 1
	if k > m {
		k = m
	}

	seen := make(map[candidateKey]struct{})
	hits := 0
	for part := 0; part < k; part++ {
		pb := part * m / k
		pe := (part + 1) * m / k
		if pe <= pb {
			continue
		}
		for _, h := range loc.Locate(pattern[pb:pe], 0) {
			start := h.Pos - pb
			if start < 0 {
				continue
			}
			key := candidateKey{record: h.Record, start: start}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if h.Record < 0 || h.Record >= len(records) {
				continue
			}
			if withinHamming(records[h.Record], pattern, start, errors) {
				hits++
			}
		}
	}
	return hits
}

// withinHamming reports whether pattern aligned at start inside rec has at
// most maxMM mismatches, bailing out as soon as the budget is exceeded.
// Alignments running past the record end fail.
func withinHamming(rec, pattern string, start, maxMM int) bool {
	if start < 0 || start+len(pattern) > len(rec) {
		return false
	}
	mm := 0
	for i := 0; i < len(pattern); i++ {
		if rec[start+i] != pattern[i] {
			mm++
			if mm > maxMM {
				return false
			}
		}
	}
	return true
}
