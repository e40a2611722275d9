// Package exporter renders processed results for the presentation layer:
// a display-string matrix of the day table, tab-separated clipboard text,
// CSV files and a JSON stats report.
package exporter

import (
	"fmt"
	"strings"

	"zeitkarte/internal/dataprocessing"
	"zeitkarte/pkg/contracts/domain"
)

// Derived display columns appended after the source's single-value columns.
const (
	timelineHeader  = "Zeitleiste"
	hasTargetHeader = "Soll vorhanden"
	omittedHeader   = "Zeitleiste entfällt"
	mismatchHeader  = "Ist-Abweichung"
)

// segmentSeparator joins the parenthesized ranges of a timeline column when
// rendered as text.
const segmentSeparator = " | "

// Matrix is a headers list plus a grid of display strings, one row per day.
type Matrix struct {
	Headers []string
	Rows    [][]string
}

// DayMatrix renders the day table of a processed result. Visible columns are
// the single-value source columns (sub-entry fields are folded into the
// timeline column) followed by the timeline and the per-day booleans: target
// hours present, timeline omitted, actual-hours mismatch.
func DayMatrix(res *dataprocessing.Result) Matrix {
	cfg := res.Config()
	table := res.Table

	visible := visibleColumns(table)

	var m Matrix
	for _, idx := range visible {
		m.Headers = append(m.Headers, table.Headers[idx])
	}
	m.Headers = append(m.Headers, timelineHeader, hasTargetHeader, omittedHeader, mismatchHeader)

	window := dataprocessing.WindowFrom(cfg.Report)
	for _, day := range res.Days {
		row := make([]string, 0, len(m.Headers))
		for _, idx := range visible {
			row = append(row, day.Cells[idx].DisplayString())
		}

		segments := dataprocessing.BuildTimeline(day, window, cfg.Format)
		omitted := dataprocessing.TimelineOmitted(day, segments, cfg.Format)
		if omitted {
			row = append(row, "")
		} else {
			row = append(row, renderTimeline(segments))
		}

		mismatch := false
		if rec := dataprocessing.ReconcileDay(day, cfg.Format, cfg.Report); rec != nil {
			mismatch = rec.Mismatch
		}
		row = append(row, formatBool(day.HasTarget), formatBool(omitted), formatBool(mismatch))
		m.Rows = append(m.Rows, row)
	}
	return m
}

// visibleColumns lists the indices of single-value columns in table order.
func visibleColumns(table dataprocessing.Table) []int {
	hidden := make(map[int]bool)
	for _, f := range []dataprocessing.Field{
		dataprocessing.FieldArrival,
		dataprocessing.FieldDeparture,
		dataprocessing.FieldAbsence,
		dataprocessing.FieldActual,
		dataprocessing.FieldPaidBreak,
		dataprocessing.FieldUnpaidBreak,
		dataprocessing.FieldHoliday,
	} {
		if idx, ok := table.Roles.Column(f); ok {
			hidden[idx] = true
		}
	}
	var visible []int
	for i := range table.Headers {
		if !hidden[i] {
			visible = append(visible, i)
		}
	}
	return visible
}

// renderTimeline renders segments as parenthesized start-end ranges, e.g.
// "(08:00-12:15) | (12:45-16:30)".
func renderTimeline(segments []domain.TimelineSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, fmt.Sprintf("(%s-%s)",
			clock(seg.StartMin), clock(seg.EndMin)))
	}
	return strings.Join(parts, segmentSeparator)
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Columns returns a sub-matrix restricted to the given column indices, in the
// given order. Out-of-range indices are skipped.
func (m Matrix) Columns(indices ...int) Matrix {
	var out Matrix
	for _, idx := range indices {
		if idx < 0 || idx >= len(m.Headers) {
			continue
		}
		out.Headers = append(out.Headers, m.Headers[idx])
	}
	for _, row := range m.Rows {
		sub := make([]string, 0, len(out.Headers))
		for _, idx := range indices {
			if idx < 0 || idx >= len(row) {
				continue
			}
			sub = append(sub, row[idx])
		}
		out.Rows = append(out.Rows, sub)
	}
	return out
}

// AdjacentPair returns the two-column sub-matrix starting at left, the shape
// handed to the clipboard for side-by-side paste.
func (m Matrix) AdjacentPair(left int) Matrix {
	return m.Columns(left, left+1)
}

// TSV renders the matrix as tab-separated text for clipboard export.
func (m Matrix) TSV() string {
	var b strings.Builder
	b.WriteString(strings.Join(m.Headers, "\t"))
	for _, row := range m.Rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, "\t"))
	}
	return b.String()
}

func formatBool(b bool) string {
	if b {
		return "ja"
	}
	return "nein"
}
