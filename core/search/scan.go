// core/search/scan.go
package search

import "strings"

// CountScan counts every occurrence of pattern in text, overlapping ones
// included, by jump-scanning with strings.Index and advancing one past each
// hit. Returns 0 when pattern is empty or longer than text.
func CountScan(text, pattern string) int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return 0
	}
	total := 0
	for i := 0; ; {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			break
		}
		total++
		i += j + 1
	}
	return total
}
