package exporter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeitkarte/internal/config"
	"zeitkarte/internal/dataprocessing"
)

// processedResult runs the pipeline over a small two-day export: the first day
// is split into an on-site morning and a remote afternoon, the second day
// declares half an hour more than its timeline covers.
func processedResult(t *testing.T) *dataprocessing.Result {
	t.Helper()

	raw := [][]string{
		{"Datum", "Art", "Soll", "Ist", "Kommt", "Geht", "Fehlgrund", "Notiz"},
		{"01-03-2024", "Tag", "7,7", "4,25", "08:00", "12:15", "", "Besuch"},
		{"01-03-2024", "Tag", "", "3,75", "12:45", "16:30", "home_hrs", ""},
		{"02-03-2024", "Tag", "7,7", "8,5", "08:00", "16:00", "", ""},
	}

	p := dataprocessing.NewProcessor(config.Default(), nil)
	res, err := p.Process(context.Background(), raw)
	require.NoError(t, err)
	return res
}

func TestDayMatrix(t *testing.T) {
	m := DayMatrix(processedResult(t))

	// Sub-entry columns are folded into the timeline; the free-text column
	// stays visible.
	assert.Equal(t, []string{
		"Datum", "Art", "Soll", "Notiz",
		"Zeitleiste", "Soll vorhanden", "Zeitleiste entfällt", "Ist-Abweichung",
	}, m.Headers)

	require.Len(t, m.Rows, 2)

	first := m.Rows[0]
	assert.Equal(t, "01-03-2024", first[0])
	assert.Equal(t, "Tag", first[1])
	assert.Equal(t, "7,7", first[2])
	assert.Equal(t, "Besuch", first[3])
	assert.Equal(t, "(08:00-12:15) | (12:45-16:30)", first[4])
	assert.Equal(t, "ja", first[5], "target hours present")
	assert.Equal(t, "nein", first[6], "timeline shown")
	assert.Equal(t, "nein", first[7], "declared 8,0 matches the timeline")

	second := m.Rows[1]
	assert.Equal(t, "(08:00-16:00)", second[4])
	assert.Equal(t, "ja", second[7], "declared 8,5 against an 8h timeline")
}

func TestMatrix_Columns(t *testing.T) {
	m := Matrix{
		Headers: []string{"a", "b", "c"},
		Rows: [][]string{
			{"1", "2", "3"},
			{"4", "5", "6"},
		},
	}

	sub := m.Columns(2, 0)
	assert.Equal(t, []string{"c", "a"}, sub.Headers)
	assert.Equal(t, [][]string{{"3", "1"}, {"6", "4"}}, sub.Rows)

	// Out-of-range indices are dropped rather than failing.
	sub = m.Columns(1, 7)
	assert.Equal(t, []string{"b"}, sub.Headers)
	assert.Equal(t, [][]string{{"2"}, {"5"}}, sub.Rows)
}

func TestMatrix_AdjacentPair(t *testing.T) {
	m := Matrix{
		Headers: []string{"a", "b", "c"},
		Rows:    [][]string{{"1", "2", "3"}},
	}

	pair := m.AdjacentPair(1)
	assert.Equal(t, []string{"b", "c"}, pair.Headers)
	assert.Equal(t, [][]string{{"2", "3"}}, pair.Rows)

	// The last column has no right neighbor; the pair degrades to one column.
	last := m.AdjacentPair(2)
	assert.Equal(t, []string{"c"}, last.Headers)
}

func TestMatrix_TSV(t *testing.T) {
	m := Matrix{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2"}, {"3", "4"}},
	}
	assert.Equal(t, "a\tb\n1\t2\n3\t4", m.TSV())
}
