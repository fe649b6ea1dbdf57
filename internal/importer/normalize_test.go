package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

func TestParseCellDate(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected time.Time
		ok       bool
	}{
		{
			name:     "excel serial 45000",
			cell:     "45000",
			expected: time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "excel serial with fraction",
			cell:     "45000.5",
			expected: time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "rfc3339",
			cell:     "2023-03-15T08:30:00Z",
			expected: time.Date(2023, time.March, 15, 8, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "iso date only",
			cell:     "2023-03-15",
			expected: time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name: "garbage",
			cell: "not a date",
			ok:   false,
		},
		{
			name: "empty",
			cell: "",
			ok:   false,
		},
		{
			name: "negative serial",
			cell: "-12",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseCellDate(tt.cell)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(parsed), "expected %s, got %s", tt.expected, parsed)
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected domain.TicketPriority
	}{
		{"french critical", "Critique", domain.TicketPriorityCritical},
		{"english critical", "CRITICAL issue", domain.TicketPriorityCritical},
		{"french high", "Haute", domain.TicketPriorityHigh},
		{"accented high", "Élevée", domain.TicketPriorityHigh},
		{"french low phrase", "Basse priorité", domain.TicketPriorityLow},
		{"english low", "low", domain.TicketPriorityLow},
		{"empty defaults to medium", "", domain.TicketPriorityMedium},
		{"unrecognized defaults to medium", "N/A", domain.TicketPriorityMedium},
		{"critical beats low", "critical but low impact", domain.TicketPriorityCritical},
		{"high beats low", "high or low", domain.TicketPriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPriority(tt.value))
		})
	}
}

func TestParseBoolean(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"oui", true},
		{"Oui", true},
		{"YES", true},
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{" oui ", true},
		{"non", false},
		{"no", false},
		{"0", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBoolean(tt.value))
		})
	}
}
