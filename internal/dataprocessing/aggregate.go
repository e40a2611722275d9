package dataprocessing

import (
	"math"

	"zeitkarte/internal/config"
	"zeitkarte/pkg/contracts/domain"
)

var segmentClasses = []domain.SegmentClass{
	domain.SegmentNormal,
	domain.SegmentHome,
	domain.SegmentPartial,
	domain.SegmentSick,
	domain.SegmentVacation,
	domain.SegmentOther,
}

// Aggregate computes the statistics for the selected slice of days. It is a
// pure function of the day set, the selection and the configuration; missing
// columns surface as zeroed totals, never as errors.
//
// ActualHours includes paid breaks from every selected day, while the
// optimistic-share denominator counts paid breaks only from days whose
// timeline is shown: declared hours exist regardless of omission, displayed
// minutes do not.
func Aggregate(days []domain.DayRecord, sel domain.Selection, vocab config.FormatConfig, rep config.ReportConfig) domain.AggregateStats {
	stats := domain.AggregateStats{
		MinutesByClass: make(map[domain.SegmentClass]float64, len(segmentClasses)),
		ShareByClass:   make(map[domain.SegmentClass]float64, len(segmentClasses)),
	}
	for _, class := range segmentClasses {
		stats.MinutesByClass[class] = 0
		stats.ShareByClass[class] = 0
	}

	window := WindowFrom(rep)
	var paidBreakMin float64

	for _, day := range days {
		if !sel.Matches(day.Date) {
			continue
		}
		stats.Days++

		category, _ := Classify(day, vocab)
		switch category {
		case domain.CategoryOffice:
			stats.OfficeDays++
		case domain.CategoryHome:
			stats.HomeDays++
		case domain.CategoryKrankenstand:
			stats.SickDays++
		case domain.CategoryUrlaub:
			stats.VacationDays++
		case domain.CategoryOther:
			stats.OtherDays++
		}

		if day.TargetHours != nil {
			stats.TargetHours += *day.TargetHours
		}
		for _, entry := range day.SubEntries {
			if entry.ActualHours != nil {
				stats.ActualHours += *entry.ActualHours
			}
			if entry.PaidBreakMin != nil {
				stats.ActualHours += *entry.PaidBreakMin / 60
			}
		}

		// Eligibility is decided before the omission check: a day can count
		// toward the deduction on recorded hours alone, without clock times.
		segments := BuildTimeline(day, window, vocab)
		if eligibleDay(rep.Eligibility, category, segments) {
			stats.EligibleDays++
		}
		if m := ReconcileDay(day, vocab, rep); m != nil {
			stats.Mismatches = append(stats.Mismatches, *m)
		}

		if TimelineOmitted(day, segments, vocab) {
			continue
		}
		for _, seg := range segments {
			stats.MinutesByClass[seg.Class] += seg.DurationMin()
			stats.TotalMinutes += seg.DurationMin()
		}
		for _, entry := range day.SubEntries {
			if entry.PaidBreakMin != nil {
				paidBreakMin += *entry.PaidBreakMin
			}
		}
	}

	if stats.TotalMinutes > 0 {
		for class, minutes := range stats.MinutesByClass {
			stats.ShareByClass[class] = minutes / stats.TotalMinutes
		}
	}

	home := stats.MinutesByClass[domain.SegmentHome]
	normal := stats.MinutesByClass[domain.SegmentNormal]
	partial := stats.MinutesByClass[domain.SegmentPartial]
	sick := stats.MinutesByClass[domain.SegmentSick]
	vacation := stats.MinutesByClass[domain.SegmentVacation]

	stats.HomeShareStrict = ratio(home, home+normal)
	stats.HomeShareOptimistic = ratio(home, home+normal+partial+paidBreakMin+sick+vacation)

	cappedDays := stats.EligibleDays
	if cappedDays > rep.TaxDayCap {
		cappedDays = rep.TaxDayCap
	}
	stats.TaxDeduction = float64(cappedDays) * rep.TaxRatePerDay

	return stats
}

// eligibleDay applies the configured tax-eligibility variant: either the Home
// day-category, or a timeline consisting entirely of remote-or-partial-leave
// segments. The two rules come from the two observed variants of the source
// format and are deliberately kept side by side.
func eligibleDay(variant string, category domain.DayCategory, segments []domain.TimelineSegment) bool {
	if variant == config.EligibilityBySegments {
		if len(segments) == 0 {
			return false
		}
		for _, seg := range segments {
			if seg.Class != domain.SegmentHome && seg.Class != domain.SegmentPartial {
				return false
			}
		}
		return true
	}
	return category == domain.CategoryHome
}

// ReconcileDay checks a day's declared actual hours against the hours
// reconstructed from its timeline. It returns nil when the check does not
// apply: days without a declared actual-hours value or without a usable
// timeline. Holiday-marked days reconstruct from the marked sub-entries'
// hours instead of the timeline.
func ReconcileDay(day domain.DayRecord, vocab config.FormatConfig, rep config.ReportConfig) *domain.DayMismatch {
	var declared float64
	hasActual := false
	for _, entry := range day.SubEntries {
		if entry.ActualHours != nil {
			declared += *entry.ActualHours
			hasActual = true
		}
	}
	if !hasActual {
		return nil
	}

	segments := BuildTimeline(day, WindowFrom(rep), vocab)
	if len(segments) == 0 || TimelineOmitted(day, segments, vocab) {
		return nil
	}

	var reconstructed float64
	if anyHoliday(day.SubEntries) {
		for _, entry := range day.SubEntries {
			if entry.Holiday && entry.ActualHours != nil {
				reconstructed += *entry.ActualHours
			}
		}
	} else {
		for _, seg := range segments {
			switch seg.Class {
			case domain.SegmentHome, domain.SegmentNormal, domain.SegmentSick, domain.SegmentVacation:
				reconstructed += seg.DurationMin() / 60
			}
		}
		for _, entry := range day.SubEntries {
			if entry.PaidBreakMin != nil {
				reconstructed += *entry.PaidBreakMin / 60
			}
		}
	}

	return &domain.DayMismatch{
		Date:          day.Date,
		Declared:      declared,
		Reconstructed: reconstructed,
		Mismatch:      math.Abs(declared-reconstructed) > rep.ToleranceHours,
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
