package dataprocessing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"zeitkarte/pkg/contracts/domain"
)

// ColumnRole is the semantic role of a column, inferred from its header.
// The role selects which parser a cell goes through.
type ColumnRole int

const (
	RoleText ColumnRole = iota
	RoleDate
	RoleTime
	RoleNumber
	RoleAbsence // absence codes: text semantics, but a distinct grouping field
)

// dateLayouts are the two accepted literal date formats.
var dateLayouts = []string{"02-01-2006", "2006-01-02"}

// ParseCell classifies one raw cell according to its column role. Empty text
// maps to the empty cell regardless of role; any value that does not parse
// under its role degrades to its trimmed original text. ParseCell never fails.
func ParseCell(raw string, role ColumnRole) domain.Cell {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.EmptyCell()
	}

	switch role {
	case RoleDate:
		if d, ok := parseDate(text); ok {
			return domain.DateCell(d)
		}
	case RoleTime:
		if m, ok := parseClock(text); ok {
			return domain.TimeCell(m)
		}
	case RoleNumber:
		if f, ok := parseDecimal(text); ok {
			return domain.NumberCell(f)
		}
	}
	return domain.TextCell(text)
}

// parseDate accepts DD-MM-YYYY and YYYY-MM-DD. The round-trip check rejects
// values the layout would otherwise normalize (unpadded components).
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Format(layout) != s {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

// parseClock accepts H:MM and HH:MM, hours 0-23, minutes 0-59, and returns
// minutes since midnight.
func parseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, false
	}
	if !allDigits(hh) || !allDigits(mm) {
		return 0, false
	}
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// parseDecimal accepts the source locale convention: "." as thousands
// separator, "," as decimal separator ("1.234,5" -> 1234.5).
func parseDecimal(s string) (float64, bool) {
	n := strings.ReplaceAll(s, ".", "")
	n = strings.ReplaceAll(n, ",", ".")
	f, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
