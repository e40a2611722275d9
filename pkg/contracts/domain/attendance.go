package domain

import (
	"time"
)

// SubEntry is one logical attendance record within a day: a single
// arrival/departure pair with its absence code and break bookings. A day may
// hold zero, one or many sub-entries (split shifts, partial leave). Sub-entries
// are built once during grouping and never mutated afterwards.
type SubEntry struct {
	Arrival        *int     `json:"arrival,omitempty"`          // minutes since midnight
	Departure      *int     `json:"departure,omitempty"`        // minutes since midnight
	AbsenceCode    string   `json:"absence_code,omitempty"`     // empty = normal attendance
	ActualHours    *float64 `json:"actual_hours,omitempty"`     // Ist value booked on this entry
	PaidBreakMin   *float64 `json:"paid_break_min,omitempty"`   // paid break minutes
	UnpaidBreakMin *float64 `json:"unpaid_break_min,omitempty"` // unpaid break minutes
	Holiday        bool     `json:"holiday,omitempty"`          // holiday marker present
}

// IsNumeric reports whether the entry carries a recorded actual-hours value.
// Day classification only considers numeric sub-entries.
func (s SubEntry) IsNumeric() bool {
	return s.ActualHours != nil
}

// IsZero reports whether every field of the entry is absent. All-zero entries
// are dropped during grouping.
func (s SubEntry) IsZero() bool {
	return s.Arrival == nil && s.Departure == nil && s.AbsenceCode == "" &&
		s.ActualHours == nil && s.PaidBreakMin == nil && s.UnpaidBreakMin == nil &&
		!s.Holiday
}

// DayRecord is the per-calendar-day model produced by grouping. Dates are
// unique across a record set and, after calendar-gap filling, strictly
// increasing with no gaps. Placeholder days synthesized for gap dates have an
// empty sub-entry list and no target hours.
type DayRecord struct {
	Date        time.Time  `json:"date"`
	HasTarget   bool       `json:"has_target"`             // Soll present and non-empty in the source
	TargetHours *float64   `json:"target_hours,omitempty"` // parsed Soll value, when numeric
	SubEntries  []SubEntry `json:"sub_entries,omitempty"`  // source row order
	Cells       []Cell     `json:"-"`                      // single-value columns, aligned to table headers
}

// DayCategory is the classification taxonomy for a day. Exactly one category
// applies to every day with at least one numeric sub-entry; days without any
// numeric sub-entry stay Unclassified and are excluded from category counts.
type DayCategory string

const (
	CategoryUnclassified DayCategory = "unclassified"
	CategoryOffice       DayCategory = "office"
	CategoryHome         DayCategory = "home"
	CategoryKrankenstand DayCategory = "krankenstand"
	CategoryUrlaub       DayCategory = "urlaub"
	CategoryNonWorkDay   DayCategory = "non_work_day"
	CategoryOther        DayCategory = "other"
)

// SegmentClass tags a timeline segment with the meaning of its absence code.
type SegmentClass string

const (
	SegmentNormal   SegmentClass = "normal"
	SegmentHome     SegmentClass = "home"
	SegmentPartial  SegmentClass = "partial"
	SegmentSick     SegmentClass = "sick"
	SegmentVacation SegmentClass = "vacation"
	SegmentOther    SegmentClass = "other"
)

// TimelineSegment is a display-window-clipped interval derived from one
// sub-entry. Segments are recomputed on demand and never stored.
type TimelineSegment struct {
	StartMin int          `json:"start_min"` // minutes since midnight, clipped
	EndMin   int          `json:"end_min"`   // minutes since midnight, clipped
	Code     string       `json:"code,omitempty"`
	Class    SegmentClass `json:"class"`
}

// DurationMin returns the segment length in minutes.
func (s TimelineSegment) DurationMin() float64 {
	return float64(s.EndMin - s.StartMin)
}

// Diagnostic identifies a day that fell through to the Other category,
// carrying the offending absence codes so callers can log or display it.
type Diagnostic struct {
	Date  time.Time `json:"date"`
	Codes []string  `json:"codes"`
}
