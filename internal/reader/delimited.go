// Package reader turns input collaborators (delimited text buffers, xlsx
// workbooks) into the raw string table consumed by the processing pipeline.
// Reading is the only place where a whole upload can fail; everything past a
// raw table degrades instead of erroring.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned when the buffer contains no non-blank lines.
	ErrEmptyInput = errors.New("input contains no data")
	// ErrNoDelimiter is returned when no known delimiter appears in the
	// header line.
	ErrNoDelimiter = errors.New("could not detect delimiter")
)

// candidate delimiters, checked against the header line.
var delimiters = []rune{';', ',', '\t'}

// DetectDelimiter picks the delimiter with the highest count in the first
// non-blank line of the buffer.
func DetectDelimiter(buf string) (rune, error) {
	for _, line := range strings.Split(buf, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		best, bestCount := rune(0), 0
		for _, d := range delimiters {
			if n := strings.Count(line, string(d)); n > bestCount {
				best, bestCount = d, n
			}
		}
		if bestCount == 0 {
			return 0, ErrNoDelimiter
		}
		return best, nil
	}
	return 0, ErrEmptyInput
}

// ReadDelimited parses a delimited text buffer into a raw string table.
// The delimiter is auto-detected, fully blank lines are discarded and ragged
// rows are kept as-is (padding happens later, in normalization).
func ReadDelimited(buf string) ([][]string, error) {
	delim, err := DetectDelimiter(buf)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, strings.Count(buf, "\n")+1)
	for _, line := range strings.Split(strings.ReplaceAll(buf, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited input: %w", err)
	}

	// Rows like ";;;" survive the line filter but carry nothing.
	out := rows[:0]
	for _, row := range rows {
		if !rowEmpty(row) {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
