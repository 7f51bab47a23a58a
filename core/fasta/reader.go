// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// separatorRun is the length of the N run inserted between records in the
// concatenated single-text representation. Long enough that no realistic
// query can bridge two records.
const separatorRun = 50

// dna5 uppercases line in place semantics and maps every byte outside
// {A,C,G,T,N} to N.
func dna5(line []byte) []byte {
	out := make([]byte, len(line))
	for i, c := range line {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'T', 'N':
			out[i] = c
		default:
			out[i] = 'N'
		}
	}
	return out
}

// ForEach streams each record of the FASTA file at path (plain or gzip, "-"
// for stdin) to fn as one normalized dna5 string. Records with no sequence
// lines are skipped; input without any header is treated as one record.
func ForEach(path string, fn func(string) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	seq := make([]byte, 0, 1<<20)
	flush := func() error {
		if len(seq) == 0 {
			return nil
		}
		rec := string(seq)
		seq = seq[:0]
		return fn(rec)
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		seq = append(seq, dna5(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan %s: %w", path, err)
	}
	return flush()
}

// ReadAll loads every record from path. It is an error for the file to yield
// zero sequences.
func ReadAll(path string) ([]string, error) {
	var out []string
	err := ForEach(path, func(rec string) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fasta: no sequences in %s", path)
	}
	return out, nil
}

// Concat joins records into the single-text representation used by the
// scanning and suffix-array primitives, separated by a fixed run of N so
// matches cannot cross record boundaries.
func Concat(records []string) string {
	if len(records) == 1 {
		return records[0]
	}
	return strings.Join(records, strings.Repeat("N", separatorRun))
}
