package reader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoDataSheet is returned when no sheet of the workbook carries the
// expected header vocabulary.
var ErrNoDataSheet = errors.New("no sheet with attendance data found")

// headerScanRows limits how deep sheet discovery looks for the header row.
const headerScanRows = 10

// ReadWorkbook extracts the attendance table from an xlsx workbook. The first
// sheet whose leading rows contain the date column header is flattened into
// the same raw string table ReadDelimited produces.
func ReadWorkbook(path, dateHeader string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if start := findHeaderRow(rows, dateHeader); start >= 0 {
			out := make([][]string, 0, len(rows)-start)
			for _, row := range rows[start:] {
				if !rowEmpty(row) {
					out = append(out, row)
				}
			}
			if len(out) > 0 {
				return out, nil
			}
		}
	}
	return nil, ErrNoDataSheet
}

// findHeaderRow returns the index of the first row mentioning the date
// header, or -1. Sheets often carry title rows above the actual table.
func findHeaderRow(rows [][]string, dateHeader string) int {
	want := strings.ToLower(strings.TrimSpace(dateHeader))
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.ToLower(strings.TrimSpace(cell)) == want {
				return i
			}
		}
	}
	return -1
}
