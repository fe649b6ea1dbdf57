package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// Excel serial dates count days since 1899-12-30; 25569 is the day offset
// between that epoch and 1970-01-01.
const excelEpochOffsetDays = 25569

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseCellDate interprets a cell either as a calendar date string or as an
// Excel serial number. The second return value is false when neither
// interpretation yields a valid date.
func ParseCellDate(cell string) (time.Time, bool) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial <= 0 {
		return time.Time{}, false
	}
	seconds := (serial - excelEpochOffsetDays) * 86400
	return time.Unix(int64(seconds), 0).UTC(), true
}

// ClassifyPriority maps free-text priority values onto the four tiers.
// Keyword precedence is Critical > High > Low; anything unrecognized,
// including empty input, falls back to Medium.
func ClassifyPriority(value string) domain.TicketPriority {
	priority := strings.ToLower(value)
	switch {
	case strings.Contains(priority, "critique") || strings.Contains(priority, "critical"):
		return domain.TicketPriorityCritical
	case strings.Contains(priority, "haute") || strings.Contains(priority, "high") || strings.Contains(priority, "élevée"):
		return domain.TicketPriorityHigh
	case strings.Contains(priority, "basse") || strings.Contains(priority, "low") || strings.Contains(priority, "faible"):
		return domain.TicketPriorityLow
	default:
		return domain.TicketPriorityMedium
	}
}

// ParseBoolean classifies affirmative keywords; everything else is false.
func ParseBoolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "oui", "yes", "true", "1":
		return true
	default:
		return false
	}
}
