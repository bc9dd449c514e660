package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month) *time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestExperience_Duration(t *testing.T) {
	now := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    *time.Time
		end      *time.Time
		expected string
	}{
		{
			name:     "years and months",
			start:    date(2022, time.January),
			end:      date(2023, time.July),
			expected: "1y 6m",
		},
		{
			name:     "whole years drop the month part",
			start:    date(2021, time.March),
			end:      date(2023, time.March),
			expected: "2y",
		},
		{
			name:     "under a year drops the year part",
			start:    date(2023, time.January),
			end:      date(2023, time.June),
			expected: "5m",
		},
		{
			name:     "ongoing role measures up to now",
			start:    date(2024, time.April),
			expected: "3m",
		},
		{
			name:     "no start date",
			expected: "",
		},
		{
			name:     "end before start clamps to zero",
			start:    date(2023, time.June),
			end:      date(2023, time.January),
			expected: "0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Experience{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.expected, e.durationAt(now))
		})
	}
}