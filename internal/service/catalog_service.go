package service

import (
	"strings"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// CatalogService serves the static catalog of request forms shown on the
// portal landing page.
type CatalogService struct {
	applications []domain.Application
}

// NewCatalogService builds the service over the default catalog.
func NewCatalogService() *CatalogService {
	return &CatalogService{applications: defaultApplications()}
}

// List filters applications by category ("" matches all) and a free-text
// search over title and description.
func (s *CatalogService) List(category, search string) []domain.Application {
	term := strings.ToLower(strings.TrimSpace(search))
	matched := make([]domain.Application, 0, len(s.applications))
	for _, app := range s.applications {
		if category != "" && !strings.EqualFold(category, app.Category) {
			continue
		}
		if term != "" {
			haystack := strings.ToLower(app.Title + " " + app.Description)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		matched = append(matched, app)
	}
	return matched
}

// Categories returns distinct categories in catalog order.
func (s *CatalogService) Categories() []string {
	seen := map[string]bool{}
	categories := make([]string, 0)
	for _, app := range s.applications {
		if !seen[app.Category] {
			seen[app.Category] = true
			categories = append(categories, app.Category)
		}
	}
	return categories
}

func defaultApplications() []domain.Application {
	return []domain.Application{
		{
			ID:          "1",
			Title:       "Dysfonctionnement Logiciels",
			Description: "Demande d'assistance technique et résolution d'incidents",
			Icon:        "settings",
			FormURL:     "https://forms.office.com/r/Ubfa8AdD5E",
			Category:    "Support",
		},
		{
			ID:          "2",
			Title:       "Dysfonctionnement Matériels",
			Description: "Demande d'assistance technique et résolution d'incidents",
			Icon:        "monitor",
			FormURL:     "https://forms.office.com/r/WkFx7n1527",
			Category:    "Support",
		},
		{
			ID:          "3",
			Title:       "Demande Équipement",
			Description: "Commande de matériel informatique (PC, écrans, périphériques)",
			Icon:        "monitor",
			FormURL:     "https://forms.office.com/r/equipement",
			Category:    "Matériel",
		},
		{
			ID:          "4",
			Title:       "Gestion Comptes Sunshine",
			Description: "Création, modification et suppression de comptes utilisateurs Sunshine",
			Icon:        "users",
			FormURL:     "https://forms.office.com/r/pQArTgCAv0",
			Category:    "Comptes",
		},
		{
			ID:          "5",
			Title:       "Gestion Comptes Ixperta",
			Description: "Création, modification et suppression de comptes utilisateurs Ixperta",
			Icon:        "users",
			FormURL:     "https://forms.office.com/r/AH7B9JLMtx",
			Category:    "Comptes",
		},
		{
			ID:          "6",
			Title:       "Gestion Comptes UNIT4",
			Description: "Création, modification et suppression de comptes utilisateurs UNIT4",
			Icon:        "users",
			FormURL:     "https://forms.office.com/r/ZFAmt75J4p",
			Category:    "Comptes",
		},
		{
			ID:          "7",
			Title:       "Accès Applications",
			Description: "Demande d'accès aux logiciels et applications métier",
			Icon:        "key",
			FormURL:     "https://forms.office.com/r/acces",
			Category:    "Applications",
		},
	}
}
