package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// requiredFields must be mapped and non-blank for a row to produce a record.
var requiredFields = []string{
	FieldTimestamp,
	FieldEmail,
	FieldName,
	FieldTitle,
	FieldDescription,
}

// Field defaults applied when an optional column is absent or blank.
const (
	defaultDepartment  = "Non spécifié"
	defaultServiceType = "Demande générale"
	defaultCategory    = "Support"
	defaultUrgency     = "Moyenne"
	defaultImpact      = "Moyen"
)

// ParseRow coerces one data row into a FormRecord. rowNumber is the 1-based
// spreadsheet row (header included) used in error messages. A row failing
// any check produces zero records and one error, never a partial record.
func ParseRow(row []string, indexes map[string]int, rowNumber int) (domain.FormRecord, error) {
	var missing []string
	for _, field := range requiredFields {
		if cellAt(row, indexes, field) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return domain.FormRecord{}, fmt.Errorf("row %d: missing required fields: %s", rowNumber, strings.Join(missing, ", "))
	}

	timestamp, ok := ParseCellDate(cellAt(row, indexes, FieldTimestamp))
	if !ok {
		return domain.FormRecord{}, fmt.Errorf("row %d: invalid timestamp format", rowNumber)
	}

	record := domain.FormRecord{
		ID:          uuid.NewString(),
		Timestamp:   timestamp,
		Email:       cellAt(row, indexes, FieldEmail),
		Name:        cellAt(row, indexes, FieldName),
		Department:  valueOr(cellAt(row, indexes, FieldDepartment), defaultDepartment),
		ServiceType: valueOr(cellAt(row, indexes, FieldServiceType), defaultServiceType),
		Priority:    ClassifyPriority(cellAt(row, indexes, FieldPriority)),
		Title:       cellAt(row, indexes, FieldTitle),
		Description: cellAt(row, indexes, FieldDescription),
		Category:    valueOr(cellAt(row, indexes, FieldCategory), defaultCategory),
		Urgency:     valueOr(cellAt(row, indexes, FieldUrgency), defaultUrgency),
		Impact:      valueOr(cellAt(row, indexes, FieldImpact), defaultImpact),
	}

	if _, mapped := indexes[FieldPhoneNumber]; mapped {
		phone := cellAt(row, indexes, FieldPhoneNumber)
		record.PhoneNumber = &phone
	}
	if _, mapped := indexes[FieldManagerApproval]; mapped {
		approval := ParseBoolean(cellAt(row, indexes, FieldManagerApproval))
		record.ManagerApproval = &approval
	}

	return record, nil
}

// cellAt returns the trimmed cell for a logical field, or the empty string
// when the column is unmapped or the row is too short.
func cellAt(row []string, indexes map[string]int, field string) string {
	idx, ok := indexes[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
