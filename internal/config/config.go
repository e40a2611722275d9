package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration. Precedence, lowest to
// highest: built-in defaults, YAML config file, ZEITKARTE_* environment
// variables.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Format  FormatConfig  `yaml:"format" envconfig:"FORMAT"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// FormatConfig is the source-format vocabulary: the recognized header names
// of the attendance export and the absence-code tokens. Header matching is
// case-insensitive on trimmed text; codes compare exactly after trimming.
type FormatConfig struct {
	DateColumn        string `yaml:"date_column" envconfig:"DATE_COLUMN" validate:"required"`
	ArrivalColumn     string `yaml:"arrival_column" envconfig:"ARRIVAL_COLUMN" validate:"required"`
	DepartureColumn   string `yaml:"departure_column" envconfig:"DEPARTURE_COLUMN" validate:"required"`
	TargetColumn      string `yaml:"target_column" envconfig:"TARGET_COLUMN" validate:"required"`
	ActualColumn      string `yaml:"actual_column" envconfig:"ACTUAL_COLUMN" validate:"required"`
	PaidBreakColumn   string `yaml:"paid_break_column" envconfig:"PAID_BREAK_COLUMN" validate:"required"`
	UnpaidBreakColumn string `yaml:"unpaid_break_column" envconfig:"UNPAID_BREAK_COLUMN" validate:"required"`
	AbsenceColumn     string `yaml:"absence_column" envconfig:"ABSENCE_COLUMN" validate:"required"`
	RowKindColumn     string `yaml:"row_kind_column" envconfig:"ROW_KIND_COLUMN" validate:"required"`
	HolidayColumn     string `yaml:"holiday_column" envconfig:"HOLIDAY_COLUMN" validate:"required"`
	TotalPrefix       string `yaml:"total_prefix" envconfig:"TOTAL_PREFIX" validate:"required"`

	// DayMarker is the literal value of the row-kind column that marks a
	// whole-day row; weekly and sub-total rows carry other values.
	DayMarker string `yaml:"day_marker" envconfig:"DAY_MARKER" validate:"required"`

	HomeCode     string `yaml:"home_code" envconfig:"HOME_CODE" validate:"required"`
	PartialCode  string `yaml:"partial_code" envconfig:"PARTIAL_CODE" validate:"required"`
	SickCode     string `yaml:"sick_code" envconfig:"SICK_CODE" validate:"required"`
	VacationCode string `yaml:"vacation_code" envconfig:"VACATION_CODE" validate:"required"`
}

// Home-office share and tax-eligibility variants. The source format has two
// observed rule sets; both are kept and selected here instead of unified.
const (
	ShareStrict     = "strict"
	ShareOptimistic = "optimistic"

	EligibilityByCategory = "category" // count Home day-category days
	EligibilityBySegments = "segments" // count days with only remote/partial segments
)

// ReportConfig holds the tunable parameters of the timeline and aggregation
// stages.
type ReportConfig struct {
	WindowStartMin int     `yaml:"window_start_min" envconfig:"WINDOW_START_MIN" validate:"min=0,max=1439"`
	WindowEndMin   int     `yaml:"window_end_min" envconfig:"WINDOW_END_MIN" validate:"min=1,max=1440,gtfield=WindowStartMin"`
	ToleranceHours float64 `yaml:"tolerance_hours" envconfig:"TOLERANCE_HOURS" validate:"min=0"`
	TaxRatePerDay  float64 `yaml:"tax_rate_per_day" envconfig:"TAX_RATE_PER_DAY" validate:"min=0"`
	TaxDayCap      int     `yaml:"tax_day_cap" envconfig:"TAX_DAY_CAP" validate:"min=0"`
	ShareVariant   string  `yaml:"share_variant" envconfig:"SHARE_VARIANT" validate:"oneof=strict optimistic"`
	Eligibility    string  `yaml:"eligibility" envconfig:"ELIGIBILITY" validate:"oneof=category segments"`
}

// Default returns the built-in configuration: the documented vocabulary of
// the attendance export, a 08:00-18:00 display window and the bounded
// per-day deduction.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/zeitkarte.log",
		},
		Format: FormatConfig{
			DateColumn:        "Datum",
			ArrivalColumn:     "Kommt",
			DepartureColumn:   "Geht",
			TargetColumn:      "Soll",
			ActualColumn:      "Ist",
			PaidBreakColumn:   "Pause bez.",
			UnpaidBreakColumn: "Pause unbez.",
			AbsenceColumn:     "Fehlgrund",
			RowKindColumn:     "Art",
			HolidayColumn:     "Feiertag",
			TotalPrefix:       "Summe",
			DayMarker:         "Tag",
			HomeCode:          "home_hrs",
			PartialCode:       "teilgu",
			SickCode:          "kr",
			VacationCode:      "gu",
		},
		Report: ReportConfig{
			WindowStartMin: 8 * 60,
			WindowEndMin:   18 * 60,
			ToleranceHours: 0.01,
			TaxRatePerDay:  3,
			TaxDayCap:      100,
			ShareVariant:   ShareStrict,
			Eligibility:    EligibilityByCategory,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// Environment wins over the file; unset variables leave fields untouched.
	if err := envconfig.Process("ZEITKARTE", cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
