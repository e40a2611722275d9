package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CellKind identifies the variant held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
	CellTime
)

// String returns a short name for the kind, used in logs and tests.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	case CellTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Cell is a typed scalar parsed from one raw table cell. It is a closed
// tagged union: exactly one variant is meaningful, selected by Kind.
// Cells are created by the constructors below and never mutated.
type Cell struct {
	Kind    CellKind
	Text    string    // CellText
	Number  float64   // CellNumber
	Date    time.Time // CellDate, normalized to UTC midnight
	Minutes int       // CellTime, minutes since midnight (0-1439)
}

// EmptyCell returns the absent/empty variant.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// TextCell returns a text cell holding the given (already trimmed) string.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// DateCell returns a calendar-date cell. The time-of-day and zone of t are
// discarded: only year, month and day are kept.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: Midnight(t)}
}

// TimeCell returns a time-of-day cell holding minutes since midnight.
func TimeCell(minutes int) Cell {
	return Cell{Kind: CellTime, Minutes: minutes}
}

// IsEmpty reports whether the cell is the absent/empty variant.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// DisplayString renders the cell for presentation and clipboard export.
// Dates use DD-MM-YYYY, times use HH:MM and numbers use a comma decimal
// separator, matching the source-file convention.
func (c Cell) DisplayString() string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellText:
		return c.Text
	case CellNumber:
		s := strconv.FormatFloat(c.Number, 'f', -1, 64)
		return strings.ReplaceAll(s, ".", ",")
	case CellDate:
		return c.Date.Format("02-01-2006")
	case CellTime:
		return fmt.Sprintf("%02d:%02d", c.Minutes/60, c.Minutes%60)
	default:
		return ""
	}
}

// Midnight truncates t to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
