package dto

import (
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// SubmissionResponse is the requester-facing projection of a ticket.
type SubmissionResponse struct {
	TicketID           string                `json:"ticket_id"`
	TicketNumber       string                `json:"ticket_number"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	Category           string                `json:"category"`
	Department         string                `json:"department"`
	Priority           domain.TicketPriority `json:"priority"`
	Status             domain.TicketStatus   `json:"status"`
	SubmittedAt        time.Time             `json:"submitted_at"`
	LastUpdate         time.Time             `json:"last_update"`
	DueDate            time.Time             `json:"due_date"`
	ProgressPercentage int                   `json:"progress_percentage"`
	Comments           []CommentResponse     `json:"comments"`
}

// TrackingStatsResponse summarizes a requester's history.
type TrackingStatsResponse struct {
	TotalSubmissions       int        `json:"total_submissions"`
	PendingSubmissions     int        `json:"pending_submissions"`
	ResolvedSubmissions    int        `json:"resolved_submissions"`
	AverageResolutionHours float64    `json:"average_resolution_hours"`
	LastSubmission         *time.Time `json:"last_submission,omitempty"`
}
