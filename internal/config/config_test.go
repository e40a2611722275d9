package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Datum", cfg.Format.DateColumn)
	assert.Equal(t, "Tag", cfg.Format.DayMarker)
	assert.Equal(t, 8*60, cfg.Report.WindowStartMin)
	assert.Equal(t, 18*60, cfg.Report.WindowEndMin)
	assert.Equal(t, 100, cfg.Report.TaxDayCap)
	assert.Equal(t, ShareStrict, cfg.Report.ShareVariant)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
format:
  home_code: ho
report:
  tax_day_cap: 50
  share_variant: optimistic
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ho", cfg.Format.HomeCode)
	assert.Equal(t, 50, cfg.Report.TaxDayCap)
	assert.Equal(t, ShareOptimistic, cfg.Report.ShareVariant)

	// Untouched keys keep their defaults.
	assert.Equal(t, "Datum", cfg.Format.DateColumn)
	assert.Equal(t, 3.0, cfg.Report.TaxRatePerDay)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  tax_day_cap: 50\n"), 0o644))

	t.Setenv("ZEITKARTE_REPORT_TAX_DAY_CAP", "25")
	t.Setenv("ZEITKARTE_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Report.TaxDayCap)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown log level", "logging:\n  level: loud\n"},
		{"window end before start", "report:\n  window_start_min: 600\n  window_end_min: 500\n"},
		{"empty required vocabulary", "format:\n  date_column: \"\"\n"},
		{"unknown share variant", "report:\n  share_variant: creative\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [broken\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
