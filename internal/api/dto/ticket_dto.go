package dto

import (
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// TicketSummary response.
type TicketSummary struct {
	ID           string                `json:"id"`
	TicketNumber string                `json:"ticket_number"`
	Title        string                `json:"title"`
	Category     string                `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	Requester    RequesterResponse     `json:"requester"`
	Assignee     *AssigneeResponse     `json:"assignee,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	DueDate      time.Time             `json:"due_date"`
	SLA          SLAResponse           `json:"sla"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	ID           string                `json:"id"`
	TicketNumber string                `json:"ticket_number"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     string                `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	Requester    RequesterResponse     `json:"requester"`
	Assignee     *AssigneeResponse     `json:"assignee,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	DueDate      time.Time             `json:"due_date"`
	ResolvedAt   *time.Time            `json:"resolved_at,omitempty"`
	Resolution   *string               `json:"resolution,omitempty"`
	Comments     []CommentResponse     `json:"comments"`
	Treatments   []TreatmentResponse   `json:"treatments"`
	Evaluations  []EvaluationResponse  `json:"evaluations"`
	SLA          SLAResponse           `json:"sla"`
}

// RequesterResponse identifies the submitter.
type RequesterResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// AssigneeResponse identifies the handling staff member.
type AssigneeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SLAResponse carries the SLA targets in hours.
type SLAResponse struct {
	ResponseTime   int  `json:"response_time"`
	ResolutionTime int  `json:"resolution_time"`
	Breached       bool `json:"breached"`
}

// CommentResponse represents one thread message.
type CommentResponse struct {
	ID         string                   `json:"id"`
	Author     string                   `json:"author"`
	AuthorType domain.CommentAuthorType `json:"author_type"`
	Content    string                   `json:"content"`
	Timestamp  time.Time                `json:"timestamp"`
	IsInternal bool                     `json:"is_internal"`
}

// TreatmentResponse represents one technical intervention.
type TreatmentResponse struct {
	ID              string                 `json:"id"`
	TreatmentDate   time.Time              `json:"treatment_date"`
	Technician      string                 `json:"technician"`
	Action          string                 `json:"action"`
	Description     string                 `json:"description"`
	Status          domain.TreatmentStatus `json:"status"`
	DurationMinutes *int                   `json:"duration_minutes,omitempty"`
	NextAction      *string                `json:"next_action,omitempty"`
}

// EvaluationResponse represents one assessment.
type EvaluationResponse struct {
	ID               string                   `json:"id"`
	EvaluationDate   time.Time                `json:"evaluation_date"`
	Evaluator        string                   `json:"evaluator"`
	Type             domain.EvaluationType    `json:"type"`
	Severity         domain.TicketPriority    `json:"severity"`
	Impact           domain.TicketPriority    `json:"impact"`
	Urgency          domain.TicketPriority    `json:"urgency"`
	RootCause        *string                  `json:"root_cause,omitempty"`
	RiskAssessment   string                   `json:"risk_assessment"`
	Recommendations  []string                 `json:"recommendations"`
	FollowUpRequired bool                     `json:"follow_up_required"`
	FollowUpDate     *time.Time               `json:"follow_up_date,omitempty"`
}

// UpdateTicketRequest payload for PATCH /tickets/:id.
type UpdateTicketRequest struct {
	Status        *domain.TicketStatus `json:"status"`
	AssigneeName  *string              `json:"assignee_name"`
	AssigneeEmail *string              `json:"assignee_email"`
	Resolution    *string              `json:"resolution"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Author     string                   `json:"author"`
	AuthorType domain.CommentAuthorType `json:"author_type"`
	Content    string                   `json:"content"`
	IsInternal bool                     `json:"is_internal"`
}

// CreateTreatmentRequest payload.
type CreateTreatmentRequest struct {
	Technician      string                 `json:"technician"`
	Action          string                 `json:"action"`
	Description     string                 `json:"description"`
	Status          domain.TreatmentStatus `json:"status"`
	DurationMinutes *int                   `json:"duration_minutes"`
	NextAction      *string                `json:"next_action"`
}

// CreateEvaluationRequest payload.
type CreateEvaluationRequest struct {
	Evaluator        string                `json:"evaluator"`
	Type             domain.EvaluationType `json:"type"`
	Severity         domain.TicketPriority `json:"severity"`
	Impact           domain.TicketPriority `json:"impact"`
	Urgency          domain.TicketPriority `json:"urgency"`
	RootCause        *string               `json:"root_cause"`
	RiskAssessment   string                `json:"risk_assessment"`
	Recommendations  []string              `json:"recommendations"`
	FollowUpRequired bool                  `json:"follow_up_required"`
	FollowUpDate     *time.Time            `json:"follow_up_date"`
}

// MetricsResponse carries dashboard figures.
type MetricsResponse struct {
	TotalTickets          int     `json:"total_tickets"`
	OpenTickets           int     `json:"open_tickets"`
	ResolvedToday         int     `json:"resolved_today"`
	AverageResolutionTime float64 `json:"average_resolution_time"`
	SLACompliance         float64 `json:"sla_compliance"`
	CriticalTickets       int     `json:"critical_tickets"`
}
