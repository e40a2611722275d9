package dataprocessing

import (
	"log/slog"
	"sort"
	"time"

	"zeitkarte/pkg/contracts/domain"
)

// multiValueFields are the columns collapsed into per-row sub-entries during
// grouping. Every other column is single-valued per day.
var multiValueFields = []Field{
	FieldArrival,
	FieldDeparture,
	FieldAbsence,
	FieldActual,
	FieldPaidBreak,
	FieldUnpaidBreak,
	FieldHoliday,
}

// GroupByDay collapses the table to one row per calendar date, in ascending
// date order. Each source row of a date becomes one sub-entry (all-empty
// sub-entries are dropped); single-value columns take the first non-empty
// value of the date's rows. Without a date column, or when no date parses at
// all, the table is returned unchanged: grouping is a no-op, not a failure.
func GroupByDay(t Table, logger *slog.Logger) Table {
	if logger == nil {
		logger = slog.Default()
	}

	dateIdx, hasDate := t.Roles.Column(FieldDate)
	if !hasDate {
		logger.Warn("date column missing, grouping skipped")
		return t
	}

	buckets := make(map[time.Time][]Row)
	var dates []time.Time
	for _, row := range t.Rows {
		cell := row.Cells[dateIdx]
		if cell.Kind != domain.CellDate {
			continue
		}
		if _, seen := buckets[cell.Date]; !seen {
			dates = append(dates, cell.Date)
		}
		buckets[cell.Date] = append(buckets[cell.Date], row)
	}
	if len(dates) == 0 {
		logger.Warn("no parseable dates found, grouping skipped")
		return t
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	multi := make(map[int]bool)
	for _, f := range multiValueFields {
		if idx, ok := t.Roles.Column(f); ok {
			multi[idx] = true
		}
	}

	grouped := Table{Headers: t.Headers, Roles: t.Roles, Grouped: true}
	for _, date := range dates {
		grouped.Rows = append(grouped.Rows, mergeBucket(t, buckets[date], date, dateIdx, multi))
	}

	logger.Debug("grouped rows by date",
		slog.Int("days", len(dates)),
		slog.Int("source_rows", len(t.Rows)))

	return grouped
}

// mergeBucket builds the single day row for one date bucket.
func mergeBucket(t Table, rows []Row, date time.Time, dateIdx int, multi map[int]bool) Row {
	cells := make([]domain.Cell, len(t.Headers))
	for i := range cells {
		if i == dateIdx {
			cells[i] = domain.DateCell(date)
			continue
		}
		if multi[i] {
			cells[i] = domain.EmptyCell()
			continue
		}
		cells[i] = rows[0].Cells[i]
		for _, row := range rows {
			if !row.Cells[i].IsEmpty() {
				cells[i] = row.Cells[i]
				break
			}
		}
	}

	day := Row{Cells: cells}
	for _, row := range rows {
		if entry, ok := subEntryFromRow(row, t.Roles); ok {
			day.SubEntries = append(day.SubEntries, entry)
		}
	}

	if targetIdx, ok := t.Roles.Column(FieldTarget); ok {
		target := cells[targetIdx]
		day.HasTarget = !target.IsEmpty()
		if target.Kind == domain.CellNumber {
			v := target.Number
			day.TargetHours = &v
		}
	}
	return day
}

// subEntryFromRow extracts the multi-value fields of one source row. The
// second return is false when every one of those fields is empty.
func subEntryFromRow(row Row, roles RoleMap) (domain.SubEntry, bool) {
	var entry domain.SubEntry
	empty := true

	cellAt := func(f Field) (domain.Cell, bool) {
		idx, ok := roles.Column(f)
		if !ok {
			return domain.EmptyCell(), false
		}
		cell := row.Cells[idx]
		if !cell.IsEmpty() {
			empty = false
		}
		return cell, true
	}

	if cell, ok := cellAt(FieldArrival); ok && cell.Kind == domain.CellTime {
		v := cell.Minutes
		entry.Arrival = &v
	}
	if cell, ok := cellAt(FieldDeparture); ok && cell.Kind == domain.CellTime {
		v := cell.Minutes
		entry.Departure = &v
	}
	if cell, ok := cellAt(FieldAbsence); ok && cell.Kind == domain.CellText {
		entry.AbsenceCode = cell.Text
	}
	if cell, ok := cellAt(FieldActual); ok && cell.Kind == domain.CellNumber {
		v := cell.Number
		entry.ActualHours = &v
	}
	if cell, ok := cellAt(FieldPaidBreak); ok && cell.Kind == domain.CellNumber {
		v := cell.Number
		entry.PaidBreakMin = &v
	}
	if cell, ok := cellAt(FieldUnpaidBreak); ok && cell.Kind == domain.CellNumber {
		v := cell.Number
		entry.UnpaidBreakMin = &v
	}
	if cell, ok := cellAt(FieldHoliday); ok {
		entry.Holiday = !cell.IsEmpty()
	}

	return entry, !empty
}

// FillCalendarGaps synthesizes one placeholder row per calendar date missing
// between the grouped table's first and last dates. Placeholder rows carry an
// empty cell in every column except the date and have no target hours. After
// filling, dates are unique, strictly increasing and gap-free.
func FillCalendarGaps(t Table) Table {
	dateIdx, hasDate := t.Roles.Column(FieldDate)
	if !t.Grouped || !hasDate || len(t.Rows) < 2 {
		return t
	}

	filled := Table{Headers: t.Headers, Roles: t.Roles, Grouped: true}
	var prev time.Time
	for i, row := range t.Rows {
		date := row.Cells[dateIdx].Date
		if i > 0 {
			for d := prev.AddDate(0, 0, 1); d.Before(date); d = d.AddDate(0, 0, 1) {
				filled.Rows = append(filled.Rows, placeholderRow(len(t.Headers), dateIdx, d))
			}
		}
		filled.Rows = append(filled.Rows, row)
		prev = date
	}
	return filled
}

func placeholderRow(width, dateIdx int, date time.Time) Row {
	cells := make([]domain.Cell, width)
	for i := range cells {
		cells[i] = domain.EmptyCell()
	}
	cells[dateIdx] = domain.DateCell(date)
	return Row{Cells: cells}
}

// DayRecords converts a grouped (and normally gap-filled) table to the
// per-day domain model. Ungrouped tables yield no records.
func DayRecords(t Table) []domain.DayRecord {
	dateIdx, hasDate := t.Roles.Column(FieldDate)
	if !t.Grouped || !hasDate {
		return nil
	}
	days := make([]domain.DayRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		days = append(days, domain.DayRecord{
			Date:        row.Cells[dateIdx].Date,
			HasTarget:   row.HasTarget,
			TargetHours: row.TargetHours,
			SubEntries:  row.SubEntries,
			Cells:       row.Cells,
		})
	}
	return days
}
