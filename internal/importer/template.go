package importer

import (
	"time"

	"github.com/xuri/excelize/v2"
)

// TemplateFileName is the suggested download name for the template workbook.
const TemplateFileName = "template-microsoft-forms.xlsx"

const templateSheet = "Template"

var templateHeaders = []interface{}{
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
}

// BuildTemplate produces a workbook with the default header row and one
// example data row, usable as a guide for producing compatible files.
func BuildTemplate() ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, err
	}
	if err := file.SetSheetRow(templateSheet, "A1", &templateHeaders); err != nil {
		return nil, err
	}

	example := []interface{}{
		time.Now().UTC().Format(time.RFC3339),
		"exemple@entreprise.com",
		"Jean Dupont",
		"IT",
		"Incident",
		"Medium",
		"Problème de connexion réseau",
		"Impossible de se connecter au réseau depuis ce matin",
		"Réseau",
		"Moyenne",
		"Moyen",
		"01 23 45 67 89",
	}
	if err := file.SetSheetRow(templateSheet, "A2", &example); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
