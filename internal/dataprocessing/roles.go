package dataprocessing

import (
	"strings"

	"zeitkarte/internal/config"
)

// Field names a column with pipeline-specific meaning. Columns without a
// field are retained as opaque single-value columns.
type Field int

const (
	FieldDate Field = iota
	FieldArrival
	FieldDeparture
	FieldTarget
	FieldActual
	FieldPaidBreak
	FieldUnpaidBreak
	FieldAbsence
	FieldRowKind
	FieldHoliday
)

// RoleMap is the header-role resolution table, built once per upload and
// consumed by every downstream component. It maps each column index to a
// parsing role and each known field to its column index.
type RoleMap struct {
	Roles  []ColumnRole
	fields map[Field]int
}

// Column returns the column index carrying the given field.
func (m RoleMap) Column(f Field) (int, bool) {
	idx, ok := m.fields[f]
	return idx, ok
}

// ResolveRoles infers column roles from the header row using the configured
// vocabulary. Matching is exact on lowercased, trimmed header text, except
// for total-style columns which match on prefix. Duplicate headers keep the
// first occurrence as the field carrier.
func ResolveRoles(headers []string, vocab config.FormatConfig) RoleMap {
	m := RoleMap{
		Roles:  make([]ColumnRole, len(headers)),
		fields: make(map[Field]int),
	}

	type binding struct {
		name  string
		role  ColumnRole
		field Field
	}
	bindings := []binding{
		{vocab.DateColumn, RoleDate, FieldDate},
		{vocab.ArrivalColumn, RoleTime, FieldArrival},
		{vocab.DepartureColumn, RoleTime, FieldDeparture},
		{vocab.TargetColumn, RoleNumber, FieldTarget},
		{vocab.ActualColumn, RoleNumber, FieldActual},
		{vocab.PaidBreakColumn, RoleNumber, FieldPaidBreak},
		{vocab.UnpaidBreakColumn, RoleNumber, FieldUnpaidBreak},
		{vocab.AbsenceColumn, RoleAbsence, FieldAbsence},
		{vocab.RowKindColumn, RoleText, FieldRowKind},
		{vocab.HolidayColumn, RoleText, FieldHoliday},
	}

	totalPrefix := normalizeHeader(vocab.TotalPrefix)

	for i, header := range headers {
		h := normalizeHeader(header)
		role := RoleText
		matched := false
		for _, b := range bindings {
			if h == normalizeHeader(b.name) {
				role = b.role
				matched = true
				if _, taken := m.fields[b.field]; !taken {
					m.fields[b.field] = i
				}
				break
			}
		}
		if !matched && totalPrefix != "" && strings.HasPrefix(h, totalPrefix) {
			role = RoleNumber
		}
		m.Roles[i] = role
	}
	return m
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
