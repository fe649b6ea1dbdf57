package store

import (
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// SeedTickets returns the demo dataset the portal boots with.
func SeedTickets() []domain.Ticket {
	duration30 := 30
	duration60 := 60
	nextAction := "Remplacement du switch"
	rootCause := "Défaillance matérielle du switch réseau"
	followUp := date("2025-01-16T09:00:00Z")
	resolvedAt := date("2025-01-14T15:20:00Z")
	resolution := "Licence renouvelée et poste réactivé"

	return []domain.Ticket{
		{
			ID:           "seed-1",
			TicketNumber: "INC-2025-001",
			Title:        "Problème de connexion réseau - Bureau 205",
			Description:  "Impossible de se connecter au réseau depuis ce matin. Aucun accès internet ni aux serveurs internes.",
			Category:     "Réseau",
			Priority:     domain.TicketPriorityHigh,
			Status:       domain.TicketStatusInProgress,
			Requester: domain.Requester{
				Name:       "Marie Dubois",
				Email:      "marie.dubois@entreprise.com",
				Department: "Comptabilité",
			},
			Assignee: &domain.Assignee{
				Name:  "Jean Martin",
				Email: "jean.martin@it.entreprise.com",
			},
			CreatedAt: date("2025-01-15T08:30:00Z"),
			UpdatedAt: date("2025-01-15T10:15:00Z"),
			DueDate:   date("2025-01-16T08:30:00Z"),
			Comments: []domain.Comment{
				{
					ID:         "seed-1-c1",
					Author:     "Jean Martin",
					AuthorType: domain.AuthorTypeITStaff,
					Content:    "Ticket pris en charge. Vérification du switch réseau en cours.",
					Timestamp:  date("2025-01-15T09:00:00Z"),
					IsInternal: false,
				},
			},
			Treatments: []domain.Treatment{
				{
					ID:              "seed-1-t1",
					TreatmentDate:   date("2025-01-15T09:00:00Z"),
					Technician:      "Jean Martin",
					Action:          "Diagnostic initial",
					Description:     "Vérification de la connectivité réseau et identification du switch défaillant",
					Status:          domain.TreatmentStatusCompleted,
					DurationMinutes: &duration30,
					NextAction:      &nextAction,
				},
				{
					ID:              "seed-1-t2",
					TreatmentDate:   date("2025-01-15T14:30:00Z"),
					Technician:      "Jean Martin",
					Action:          "Remplacement matériel",
					Description:     "Remplacement du switch réseau défaillant par un nouveau modèle",
					Status:          domain.TreatmentStatusInProgress,
					DurationMinutes: &duration60,
				},
			},
			Evaluations: []domain.Evaluation{
				{
					ID:             "seed-1-e1",
					EvaluationDate: date("2025-01-15T09:15:00Z"),
					Evaluator:      "Jean Martin",
					Type:           domain.EvaluationTypeInitial,
					Severity:       domain.TicketPriorityHigh,
					Impact:         domain.TicketPriorityHigh,
					Urgency:        domain.TicketPriorityHigh,
					RootCause:      &rootCause,
					RiskAssessment: "Impact sur la productivité de tout l'étage. Risque de propagation si non traité rapidement.",
					Recommendations: []string{
						"Remplacement immédiat du switch",
						"Mise en place d'une surveillance proactive",
						"Planification du renouvellement du matériel réseau",
					},
					FollowUpRequired: true,
					FollowUpDate:     &followUp,
				},
			},
			SLA: domain.SLA{ResponseTime: 4, ResolutionTime: 24, Breached: false},
		},
		{
			ID:           "seed-2",
			TicketNumber: "REQ-2025-001",
			Title:        "Demande de nouveau poste de travail",
			Description:  "Nouvel arrivant dans l'équipe marketing, besoin d'un poste complet avec double écran.",
			Category:     "Matériel",
			Priority:     domain.TicketPriorityMedium,
			Status:       domain.TicketStatusOpen,
			Requester: domain.Requester{
				Name:       "Pierre Leroy",
				Email:      "pierre.leroy@entreprise.com",
				Department: "Marketing",
			},
			CreatedAt:   date("2025-01-15T11:00:00Z"),
			UpdatedAt:   date("2025-01-15T11:00:00Z"),
			DueDate:     date("2025-01-18T11:00:00Z"),
			Comments:    []domain.Comment{},
			Treatments:  []domain.Treatment{},
			Evaluations: []domain.Evaluation{},
			SLA:         domain.SLA{ResponseTime: 8, ResolutionTime: 72, Breached: false},
		},
		{
			ID:           "seed-3",
			TicketNumber: "REQ-2025-002",
			Title:        "Renouvellement licence logiciel comptable",
			Description:  "La licence du logiciel comptable expire en fin de semaine, le poste est bloqué.",
			Category:     "Applications",
			Priority:     domain.TicketPriorityCritical,
			Status:       domain.TicketStatusResolved,
			Requester: domain.Requester{
				Name:       "Sophie Bernard",
				Email:      "sophie.bernard@entreprise.com",
				Department: "Comptabilité",
			},
			Assignee: &domain.Assignee{
				Name:  "Luc Petit",
				Email: "luc.petit@it.entreprise.com",
			},
			CreatedAt:  date("2025-01-14T09:45:00Z"),
			UpdatedAt:  date("2025-01-14T15:20:00Z"),
			DueDate:    date("2025-01-14T13:45:00Z"),
			ResolvedAt: &resolvedAt,
			Resolution: &resolution,
			Comments: []domain.Comment{
				{
					ID:         "seed-3-c1",
					Author:     "Luc Petit",
					AuthorType: domain.AuthorTypeITStaff,
					Content:    "Commande de la licence passée auprès de l'éditeur.",
					Timestamp:  date("2025-01-14T10:30:00Z"),
					IsInternal: true,
				},
				{
					ID:         "seed-3-c2",
					Author:     "Sophie Bernard",
					AuthorType: domain.AuthorTypeUser,
					Content:    "Merci, le poste fonctionne à nouveau.",
					Timestamp:  date("2025-01-14T15:25:00Z"),
					IsInternal: false,
				},
			},
			Treatments:  []domain.Treatment{},
			Evaluations: []domain.Evaluation{},
			SLA:         domain.SLA{ResponseTime: 1, ResolutionTime: 4, Breached: true},
		},
	}
}

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
