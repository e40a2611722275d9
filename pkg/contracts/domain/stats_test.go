package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Matches(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"zero value selects everything", Selection{}, true},
		{"matching year", Selection{Year: 2024}, true},
		{"other year", Selection{Year: 2023}, false},
		{"matching year and month", Selection{Year: 2024, Month: time.March}, true},
		{"matching year, other month", Selection{Year: 2024, Month: time.April}, false},
		{"month without year matches across years", Selection{Month: time.March}, true},
		{"month without year, other month", Selection{Month: time.April}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Matches(date))
		})
	}
}

func TestSubEntry_Predicates(t *testing.T) {
	hours := 7.7
	arrival := 480

	assert.True(t, SubEntry{}.IsZero())
	assert.False(t, SubEntry{Holiday: true}.IsZero())
	assert.False(t, SubEntry{Arrival: &arrival}.IsZero())

	assert.True(t, SubEntry{ActualHours: &hours}.IsNumeric())
	assert.False(t, SubEntry{Arrival: &arrival}.IsNumeric())
}
