package dataprocessing

import (
	"zeitkarte/internal/config"
	"zeitkarte/pkg/contracts/domain"
)

// Classify assigns a day exactly one category, by the first matching rule:
//
//  1. target hours present and every numeric sub-entry coded sick -> Krankenstand
//  2. every numeric sub-entry coded vacation -> Urlaub
//  3. exactly one numeric sub-entry with an empty code, and some sub-entry
//     carries the holiday marker -> NonWorkDay
//  4. any sub-entry with an empty code -> Office
//  5. some sub-entry coded home and every code home-or-partial -> Home
//  6. otherwise Other, with a diagnostic naming the day and its codes
//
// Target-hours presence disambiguates genuine sick leave from incidental use
// of the sick code; holiday detection requires the explicit marker so ordinary
// empty-code days are not mistaken for holidays. Days without any numeric
// sub-entry (calendar placeholders among them) stay Unclassified.
func Classify(day domain.DayRecord, vocab config.FormatConfig) (domain.DayCategory, *domain.Diagnostic) {
	var numeric []domain.SubEntry
	for _, entry := range day.SubEntries {
		if entry.IsNumeric() {
			numeric = append(numeric, entry)
		}
	}
	if len(numeric) == 0 {
		return domain.CategoryUnclassified, nil
	}

	if day.HasTarget && allCoded(numeric, vocab.SickCode) {
		return domain.CategoryKrankenstand, nil
	}
	if allCoded(numeric, vocab.VacationCode) {
		return domain.CategoryUrlaub, nil
	}
	if len(numeric) == 1 && numeric[0].AbsenceCode == "" && anyHoliday(day.SubEntries) {
		return domain.CategoryNonWorkDay, nil
	}
	if anyCoded(day.SubEntries, "") {
		return domain.CategoryOffice, nil
	}
	if anyCoded(day.SubEntries, vocab.HomeCode) && allHomeOrPartial(day.SubEntries, vocab) {
		return domain.CategoryHome, nil
	}

	return domain.CategoryOther, &domain.Diagnostic{
		Date:  day.Date,
		Codes: distinctCodes(day.SubEntries),
	}
}

func allCoded(entries []domain.SubEntry, code string) bool {
	for _, e := range entries {
		if e.AbsenceCode != code {
			return false
		}
	}
	return true
}

func anyCoded(entries []domain.SubEntry, code string) bool {
	for _, e := range entries {
		if e.AbsenceCode == code {
			return true
		}
	}
	return false
}

func anyHoliday(entries []domain.SubEntry) bool {
	for _, e := range entries {
		if e.Holiday {
			return true
		}
	}
	return false
}

func allHomeOrPartial(entries []domain.SubEntry, vocab config.FormatConfig) bool {
	for _, e := range entries {
		if e.AbsenceCode != vocab.HomeCode && e.AbsenceCode != vocab.PartialCode {
			return false
		}
	}
	return true
}

func distinctCodes(entries []domain.SubEntry) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, e := range entries {
		if !seen[e.AbsenceCode] {
			seen[e.AbsenceCode] = true
			codes = append(codes, e.AbsenceCode)
		}
	}
	return codes
}
