package importer

import "strings"

// Logical field names used throughout the import pipeline.
const (
	FieldTimestamp       = "timestamp"
	FieldEmail           = "email"
	FieldName            = "name"
	FieldDepartment      = "department"
	FieldServiceType     = "serviceType"
	FieldPriority        = "priority"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldUrgency         = "urgency"
	FieldImpact          = "impact"
	FieldPhoneNumber     = "phoneNumber"
	FieldManagerApproval = "managerApproval"
)

// ColumnMapping maps each logical field to the header name expected in the
// uploaded spreadsheet. Defaults follow the Microsoft Forms export in French
// and can be overridden per import.
type ColumnMapping struct {
	Timestamp       string
	Email           string
	Name            string
	Department      string
	ServiceType     string
	Priority        string
	Title           string
	Description     string
	Category        string
	Urgency         string
	Impact          string
	PhoneNumber     string
	ManagerApproval string
}

// DefaultColumnMapping returns the stock Microsoft Forms header names.
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		Timestamp:       "Horodateur",
		Email:           "Adresse e-mail",
		Name:            "Nom complet",
		Department:      "Département",
		ServiceType:     "Type de service",
		Priority:        "Priorité",
		Title:           "Titre de la demande",
		Description:     "Description détaillée",
		Category:        "Catégorie",
		Urgency:         "Urgence",
		Impact:          "Impact",
		PhoneNumber:     "Numéro de téléphone",
		ManagerApproval: "Approbation manager",
	}
}

// WithOverrides returns a copy of the mapping with non-empty overrides
// applied, keyed by logical field name.
func (m ColumnMapping) WithOverrides(overrides map[string]string) ColumnMapping {
	for field, header := range overrides {
		if strings.TrimSpace(header) == "" {
			continue
		}
		switch field {
		case FieldTimestamp:
			m.Timestamp = header
		case FieldEmail:
			m.Email = header
		case FieldName:
			m.Name = header
		case FieldDepartment:
			m.Department = header
		case FieldServiceType:
			m.ServiceType = header
		case FieldPriority:
			m.Priority = header
		case FieldTitle:
			m.Title = header
		case FieldDescription:
			m.Description = header
		case FieldCategory:
			m.Category = header
		case FieldUrgency:
			m.Urgency = header
		case FieldImpact:
			m.Impact = header
		case FieldPhoneNumber:
			m.PhoneNumber = header
		case FieldManagerApproval:
			m.ManagerApproval = header
		}
	}
	return m
}

type fieldHeader struct {
	field  string
	header string
}

func (m ColumnMapping) fields() []fieldHeader {
	return []fieldHeader{
		{FieldTimestamp, m.Timestamp},
		{FieldEmail, m.Email},
		{FieldName, m.Name},
		{FieldDepartment, m.Department},
		{FieldServiceType, m.ServiceType},
		{FieldPriority, m.Priority},
		{FieldTitle, m.Title},
		{FieldDescription, m.Description},
		{FieldCategory, m.Category},
		{FieldUrgency, m.Urgency},
		{FieldImpact, m.Impact},
		{FieldPhoneNumber, m.PhoneNumber},
		{FieldManagerApproval, m.ManagerApproval},
	}
}

// ResolveColumns maps each configured logical field to a zero-based column
// index over the header row. An exact match (case-insensitive, whitespace
// normalized) wins; otherwise the first header related to the expected name
// by case-insensitive substring containment, in either direction, is taken.
// Fields without a matching header are omitted from the result; required
// field enforcement happens per row.
func ResolveColumns(headers []string, mapping ColumnMapping) map[string]int {
	indexes := make(map[string]int)
	for _, fh := range mapping.fields() {
		if strings.TrimSpace(fh.header) == "" {
			continue
		}
		if idx, ok := findColumn(headers, fh.header); ok {
			indexes[fh.field] = idx
		}
	}
	return indexes
}

func findColumn(headers []string, expected string) (int, bool) {
	want := normalizeHeader(expected)
	for i, header := range headers {
		if normalizeHeader(header) == want {
			return i, true
		}
	}
	wantLower := strings.ToLower(expected)
	for i, header := range headers {
		got := strings.ToLower(strings.TrimSpace(header))
		if got == "" {
			continue
		}
		if strings.Contains(got, wantLower) || strings.Contains(wantLower, got) {
			return i, true
		}
	}
	return 0, false
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}
