package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want rune
	}{
		{"semicolon", "Datum;Kommt;Geht\n", ';'},
		{"comma", "Datum,Kommt,Geht\n", ','},
		{"tab", "Datum\tKommt\tGeht\n", '\t'},
		{"highest count wins", "Datum;Kommt,Geht;Soll;Ist\n", ';'},
		{"skips leading blank lines", "\n   \nDatum;Kommt\n", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectDelimiter(tt.buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no delimiter", func(t *testing.T) {
		_, err := DetectDelimiter("Datum\n")
		assert.ErrorIs(t, err, ErrNoDelimiter)
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := DetectDelimiter("\n\n")
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestReadDelimited(t *testing.T) {
	buf := "Datum;Kommt;Geht\r\n\r\n01-03-2024;08:00;16:00\r\n;;;\r\n02-03-2024;08:30\r\n"

	rows, err := ReadDelimited(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3, "blank and all-empty rows are dropped")

	assert.Equal(t, []string{"Datum", "Kommt", "Geht"}, rows[0])
	assert.Equal(t, []string{"01-03-2024", "08:00", "16:00"}, rows[1])
	assert.Equal(t, []string{"02-03-2024", "08:30"}, rows[2], "ragged rows survive untouched")
}

func TestReadDelimited_QuotedFields(t *testing.T) {
	buf := "Datum;Notiz\n01-03-2024;\"Termin; extern\"\n"

	rows, err := ReadDelimited(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Termin; extern", rows[1][1])
}

func TestReadDelimited_OnlyEmptyRows(t *testing.T) {
	_, err := ReadDelimited(";;;\n;;\n")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
