package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"zeitkarte/internal/config"
	"zeitkarte/pkg/contracts/domain"
)

// Row is one table row. Before grouping a row mirrors one source line; after
// grouping a row represents one calendar day and carries its sub-entries.
type Row struct {
	Cells       []domain.Cell
	SubEntries  []domain.SubEntry
	HasTarget   bool
	TargetHours *float64
}

// Table is the normalized form of an upload: padded, header-named, typed and
// filtered to whole-day rows. Grouped is set once rows are one-per-date.
type Table struct {
	Headers []string
	Roles   RoleMap
	Rows    []Row
	Grouped bool
}

// Normalize pads ragged rows to the widest observed width, names the header
// columns, types every cell by its column role and keeps only the rows whose
// row-kind column carries the day marker. Without a row-kind column the
// result has no rows; that is fail-safe, not fail-fatal.
func Normalize(raw [][]string, vocab config.FormatConfig, logger *slog.Logger) Table {
	if logger == nil {
		logger = slog.Default()
	}
	if len(raw) == 0 {
		return Table{}
	}

	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(raw[0]) {
			name = strings.TrimSpace(raw[0][i])
		}
		if name == "" {
			name = fmt.Sprintf("spalte_%d", i+1)
		}
		headers[i] = name
	}

	roles := ResolveRoles(headers, vocab)
	t := Table{Headers: headers, Roles: roles}

	kindIdx, hasKind := roles.Column(FieldRowKind)
	if !hasKind {
		logger.Warn("row-kind column missing, no day rows recognized",
			slog.String("expected_header", vocab.RowKindColumn))
		return t
	}

	for _, src := range raw[1:] {
		cells := make([]domain.Cell, width)
		for i := 0; i < width; i++ {
			rawCell := ""
			if i < len(src) {
				rawCell = src[i]
			}
			cells[i] = ParseCell(rawCell, roles.Roles[i])
		}
		if !isDayRow(cells[kindIdx], vocab.DayMarker) {
			continue
		}
		t.Rows = append(t.Rows, Row{Cells: cells})
	}

	logger.Debug("normalized upload",
		slog.Int("columns", width),
		slog.Int("day_rows", len(t.Rows)),
		slog.Int("source_rows", len(raw)-1))

	return t
}

func isDayRow(kind domain.Cell, marker string) bool {
	return kind.Kind == domain.CellText && kind.Text == marker
}
