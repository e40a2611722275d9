package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeitkarte/internal/config"
	"zeitkarte/pkg/contracts/domain"
)

func testVocab() config.FormatConfig {
	return config.Default().Format
}

func TestResolveRoles(t *testing.T) {
	headers := []string{"Datum", "ART", " kommt ", "Geht", "Soll", "Ist", "Fehlgrund", "Pause bez.", "Pause unbez.", "Feiertag", "Summe Woche", "Notiz"}
	m := ResolveRoles(headers, testVocab())

	wantRoles := []ColumnRole{RoleDate, RoleText, RoleTime, RoleTime, RoleNumber, RoleNumber, RoleAbsence, RoleNumber, RoleNumber, RoleText, RoleNumber, RoleText}
	assert.Equal(t, wantRoles, m.Roles)

	dateIdx, ok := m.Column(FieldDate)
	require.True(t, ok)
	assert.Equal(t, 0, dateIdx)

	kindIdx, ok := m.Column(FieldRowKind)
	require.True(t, ok)
	assert.Equal(t, 1, kindIdx)

	arrivalIdx, ok := m.Column(FieldArrival)
	require.True(t, ok)
	assert.Equal(t, 2, arrivalIdx)
}

func TestResolveRoles_DuplicateHeaderKeepsFirst(t *testing.T) {
	m := ResolveRoles([]string{"Datum", "Datum"}, testVocab())
	idx, ok := m.Column(FieldDate)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []ColumnRole{RoleDate, RoleDate}, m.Roles)
}

func TestNormalize(t *testing.T) {
	raw := [][]string{
		{"Datum", "Art", "", "Ist"},
		{"01-03-2024", "Tag", "x", "7,7", "ragged extra"},
		{"", "Woche", "", "38,5"},
		{"02-03-2024", "Tag"},
	}

	table := Normalize(raw, testVocab(), nil)

	// Ragged rows pad the header row too; the empty and missing header cells
	// get positional names.
	require.Equal(t, []string{"Datum", "Art", "spalte_3", "Ist", "spalte_5"}, table.Headers)

	// The weekly sub-total row is discarded.
	require.Len(t, table.Rows, 2)
	assert.Equal(t, domain.CellDate, table.Rows[0].Cells[0].Kind)
	assert.Equal(t, domain.NumberCell(7.7), table.Rows[0].Cells[3])

	// Short rows are padded with empty cells.
	assert.Equal(t, domain.EmptyCell(), table.Rows[1].Cells[3])
	assert.Equal(t, domain.EmptyCell(), table.Rows[1].Cells[4])
}

func TestNormalize_MissingRowKindColumn(t *testing.T) {
	raw := [][]string{
		{"Datum", "Ist"},
		{"01-03-2024", "7,7"},
	}

	table := Normalize(raw, testVocab(), nil)
	assert.Empty(t, table.Rows, "without a row-kind column no rows are day rows")
	assert.Equal(t, []string{"Datum", "Ist"}, table.Headers)
}

func TestNormalize_EmptyInput(t *testing.T) {
	table := Normalize(nil, testVocab(), nil)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}
