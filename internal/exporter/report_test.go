package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zeitkarte/pkg/contracts/domain"
)

func TestStatsReport_WriteJSON(t *testing.T) {
	res := processedResult(t)
	sel := domain.Selection{Year: 2024, Month: time.March}
	report := NewStatsReport(res, sel)

	assert.Equal(t, res.RunID, report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 2, report.Stats.Days)
	assert.Equal(t, 2, report.Stats.OfficeDays, "days with an uncoded segment count as on-site")

	path := filepath.Join(t.TempDir(), "reports", "stats.json")
	require.NoError(t, report.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded StatsReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	assert.Equal(t, report.Stats.Days, decoded.Stats.Days)
	assert.Equal(t, sel, decoded.Selection)
}
