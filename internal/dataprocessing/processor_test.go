package dataprocessing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeitkarte/internal/config"
	"zeitkarte/internal/shared/testutil"
	"zeitkarte/pkg/contracts/domain"
)

func TestProcessor_Process(t *testing.T) {
	cfg := config.Default()
	logger, captured := testutil.NewCaptureLogger()
	p := NewProcessor(cfg, logger)

	raw := [][]string{
		{"Datum", "Art", "Soll", "Ist", "Kommt", "Geht", "Fehlgrund"},
		{"01-03-2024", "Tag", "7,7", "8", "08:00", "16:00", ""},
		{"04-03-2024", "Tag", "7,7", "8", "09:00", "17:00", "dienstreise"},
	}

	res, err := p.Process(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Days, 4, "gap days 02 and 03 are synthesized")

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, []string{"dienstreise"}, res.Diagnostics[0].Codes)
	assert.True(t, captured.ContainsMessage("day not classifiable"))

	stats := res.Aggregate(domain.Selection{Year: 2024, Month: time.March})
	assert.Equal(t, 4, stats.Days)
	assert.Equal(t, 1, stats.OfficeDays)
	assert.Equal(t, 1, stats.OtherDays)
}

func TestProcessor_EmptyUpload(t *testing.T) {
	p := NewProcessor(config.Default(), nil)
	res, err := p.Process(context.Background(), nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestProcessor_DegradesWithoutDateColumn(t *testing.T) {
	p := NewProcessor(config.Default(), nil)

	raw := [][]string{
		{"Art", "Ist"},
		{"Tag", "8"},
	}

	res, err := p.Process(context.Background(), raw)
	require.NoError(t, err)
	assert.False(t, res.Table.Grouped)
	assert.Empty(t, res.Days)
	assert.Empty(t, res.Diagnostics)
}

func TestResult_YearsAndMonths(t *testing.T) {
	res := &Result{
		Days: []domain.DayRecord{
			{Date: date(2024, 3, 1)},
			{Date: date(2024, 3, 2)},
			{Date: date(2024, 5, 1)},
			{Date: date(2023, 12, 31)},
		},
	}

	assert.Equal(t, []int{2023, 2024}, res.Years())
	assert.Equal(t, []time.Month{time.March, time.May}, res.Months(2024))
	assert.Equal(t, []time.Month{time.December}, res.Months(2023))
	assert.Empty(t, res.Months(2022))
}
