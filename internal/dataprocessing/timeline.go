package dataprocessing

import (
	"zeitkarte/internal/config"
	"zeitkarte/pkg/contracts/domain"
)

// Window is the display window timeline segments are clipped to.
type Window struct {
	StartMin int
	EndMin   int
}

// WindowFrom extracts the configured display window.
func WindowFrom(rep config.ReportConfig) Window {
	return Window{StartMin: rep.WindowStartMin, EndMin: rep.WindowEndMin}
}

// ClassifyCode maps an absence code to its segment class using the
// configured vocabulary.
func ClassifyCode(code string, vocab config.FormatConfig) domain.SegmentClass {
	switch code {
	case "":
		return domain.SegmentNormal
	case vocab.HomeCode:
		return domain.SegmentHome
	case vocab.PartialCode:
		return domain.SegmentPartial
	case vocab.SickCode:
		return domain.SegmentSick
	case vocab.VacationCode:
		return domain.SegmentVacation
	default:
		return domain.SegmentOther
	}
}

// BuildTimeline derives the clipped, classified segments of a day from its
// sub-entries. Only sub-entries with both arrival and departure contribute;
// segments degenerate after clipping are dropped. Order follows sub-entry
// order, no merging or sorting.
func BuildTimeline(day domain.DayRecord, w Window, vocab config.FormatConfig) []domain.TimelineSegment {
	var segments []domain.TimelineSegment
	for _, entry := range day.SubEntries {
		if entry.Arrival == nil || entry.Departure == nil {
			continue
		}
		start := max(w.StartMin, *entry.Arrival)
		end := min(w.EndMin, *entry.Departure)
		if end <= start {
			continue
		}
		segments = append(segments, domain.TimelineSegment{
			StartMin: start,
			EndMin:   end,
			Code:     entry.AbsenceCode,
			Class:    ClassifyCode(entry.AbsenceCode, vocab),
		})
	}
	return segments
}

// TimelineOmitted reports whether a day's timeline is suppressed from display
// and statistics: days without target hours whose timeline is empty or
// consists only of sick-leave segments carry nothing to report, unlike
// partial or holiday days.
func TimelineOmitted(day domain.DayRecord, segments []domain.TimelineSegment, vocab config.FormatConfig) bool {
	if day.HasTarget {
		return false
	}
	for _, seg := range segments {
		if seg.Code != vocab.SickCode {
			return false
		}
	}
	return true
}
