package domain

import "time"

// CommentAuthorType distinguishes requester comments from IT staff comments.
type CommentAuthorType string

const (
	AuthorTypeUser    CommentAuthorType = "user"
	AuthorTypeITStaff CommentAuthorType = "it_staff"
)

// Comment is a message attached to a ticket thread.
type Comment struct {
	ID         string
	Author     string
	AuthorType CommentAuthorType
	Content    string
	Timestamp  time.Time
	IsInternal bool
}

// TreatmentStatus enumerates states of a technical intervention.
type TreatmentStatus string

const (
	TreatmentStatusPlanned    TreatmentStatus = "Planned"
	TreatmentStatusInProgress TreatmentStatus = "In Progress"
	TreatmentStatusCompleted  TreatmentStatus = "Completed"
	TreatmentStatusFailed     TreatmentStatus = "Failed"
)

// Treatment records one technical intervention on a ticket.
type Treatment struct {
	ID              string
	TreatmentDate   time.Time
	Technician      string
	Action          string
	Description     string
	Status          TreatmentStatus
	DurationMinutes *int
	NextAction      *string
}

// EvaluationType enumerates assessment stages.
type EvaluationType string

const (
	EvaluationTypeInitial        EvaluationType = "Initial"
	EvaluationTypeProgress       EvaluationType = "Progress"
	EvaluationTypeFinal          EvaluationType = "Final"
	EvaluationTypePostResolution EvaluationType = "Post-Resolution"
)

// Evaluation records a severity/impact assessment on a ticket.
type Evaluation struct {
	ID               string
	EvaluationDate   time.Time
	Evaluator        string
	Type             EvaluationType
	Severity         TicketPriority
	Impact           TicketPriority
	Urgency          TicketPriority
	RootCause        *string
	RiskAssessment   string
	Recommendations  []string
	FollowUpRequired bool
	FollowUpDate     *time.Time
}
