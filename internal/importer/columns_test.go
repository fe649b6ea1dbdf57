package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultFrenchHeaders = []string{
	"Horodateur",
	"Adresse e-mail",
	"Nom complet",
	"Département",
	"Type de service",
	"Priorité",
	"Titre de la demande",
	"Description détaillée",
	"Catégorie",
	"Urgence",
	"Impact",
	"Numéro de téléphone",
	"Approbation manager",
}

func TestResolveColumnsAllDefaults(t *testing.T) {
	indexes := ResolveColumns(defaultFrenchHeaders, DefaultColumnMapping())

	assert.Len(t, indexes, 13)
	expected := map[string]int{
		FieldTimestamp:       0,
		FieldEmail:           1,
		FieldName:            2,
		FieldDepartment:      3,
		FieldServiceType:     4,
		FieldPriority:        5,
		FieldTitle:           6,
		FieldDescription:     7,
		FieldCategory:        8,
		FieldUrgency:         9,
		FieldImpact:          10,
		FieldPhoneNumber:     11,
		FieldManagerApproval: 12,
	}
	assert.Equal(t, expected, indexes)
}

func TestResolveColumnsExactMatchBeatsSubstring(t *testing.T) {
	// "Priorité estimée" would satisfy the substring fallback, but the exact
	// header later in the row must win.
	headers := []string{"Priorité estimée", "Priorité"}
	mapping := ColumnMapping{Priority: "Priorité"}

	indexes := ResolveColumns(headers, mapping)

	assert.Equal(t, 1, indexes[FieldPriority])
}

func TestResolveColumnsSubstringFallback(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected int
	}{
		{"header contains expected", []string{"x", "Votre Adresse e-mail professionnelle"}, 1},
		{"expected contains header", []string{"e-mail"}, 0},
		{"case insensitive", []string{"ADRESSE E-MAIL"}, 0},
	}

	mapping := ColumnMapping{Email: "Adresse e-mail"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indexes := ResolveColumns(tt.headers, mapping)
			assert.Equal(t, tt.expected, indexes[FieldEmail])
		})
	}
}

func TestResolveColumnsUnmatchedFieldOmitted(t *testing.T) {
	headers := []string{"Horodateur", "Nom complet"}

	indexes := ResolveColumns(headers, DefaultColumnMapping())

	_, found := indexes[FieldEmail]
	assert.False(t, found)
	assert.Equal(t, 0, indexes[FieldTimestamp])
	assert.Equal(t, 1, indexes[FieldName])
}

func TestResolveColumnsIgnoresBlankHeaders(t *testing.T) {
	headers := []string{"", "  ", "Priorité"}

	indexes := ResolveColumns(headers, DefaultColumnMapping())

	assert.Equal(t, 2, indexes[FieldPriority])
}

func TestColumnMappingWithOverrides(t *testing.T) {
	mapping := DefaultColumnMapping().WithOverrides(map[string]string{
		FieldEmail: "Courriel",
		FieldTitle: "",
		"unknown":  "ignored",
	})

	assert.Equal(t, "Courriel", mapping.Email)
	assert.Equal(t, "Titre de la demande", mapping.Title)
	assert.Equal(t, "Horodateur", mapping.Timestamp)
}
