package domain

import (
	"time"
)

// Selection restricts an aggregation to one year and optionally one month.
// The zero value selects the whole record set. Selections are plain values
// threaded into the aggregator; there is no ambient "current selection".
type Selection struct {
	Year  int        `json:"year,omitempty"`  // 0 = all years
	Month time.Month `json:"month,omitempty"` // 0 = all months; without Year it matches the month in every year
}

// Matches reports whether the given date falls inside the selection.
func (s Selection) Matches(date time.Time) bool {
	if s.Year != 0 && date.Year() != s.Year {
		return false
	}
	if s.Month != 0 && date.Month() != s.Month {
		return false
	}
	return true
}

// DayMismatch records the actual-vs-reconstructed hours check for one day.
// Entries exist only for days where both a declared actual-hours value and a
// timeline were present.
type DayMismatch struct {
	Date          time.Time `json:"date"`
	Declared      float64   `json:"declared"`
	Reconstructed float64   `json:"reconstructed"`
	Mismatch      bool      `json:"mismatch"`
}

// AggregateStats is the derived statistics record for one selection of days.
// It is recomputed whenever the selection or the underlying data changes and
// is never persisted.
type AggregateStats struct {
	Days         int `json:"days"` // calendar days in the selection
	OfficeDays   int `json:"office_days"`
	HomeDays     int `json:"home_days"`
	SickDays     int `json:"sick_days"`
	VacationDays int `json:"vacation_days"`
	OtherDays    int `json:"other_days"`

	// Minute totals per segment class over all non-omitted timelines, plus
	// each class's proportion of the grand total (all zero when the total is).
	MinutesByClass map[SegmentClass]float64 `json:"minutes_by_class"`
	ShareByClass   map[SegmentClass]float64 `json:"share_by_class"`
	TotalMinutes   float64                  `json:"total_minutes"`

	TargetHours float64 `json:"target_hours"` // sum of numeric Soll values
	ActualHours float64 `json:"actual_hours"` // sum of Ist values plus paid breaks

	HomeShareStrict     float64 `json:"home_share_strict"`
	HomeShareOptimistic float64 `json:"home_share_optimistic"`

	EligibleDays int     `json:"eligible_days"` // days counting toward the deduction
	TaxDeduction float64 `json:"tax_deduction"` // bounded per-day deduction, currency units

	Mismatches []DayMismatch `json:"mismatches,omitempty"`
}
