package events

import (
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventImportCompleted     EventType = "import_completed"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketCommentAdded  EventType = "ticket_comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ImportCompletedPayload payload.
type ImportCompletedPayload struct {
	TotalRows     int `json:"total_rows"`
	ProcessedRows int `json:"processed_rows"`
	FailedRows    int `json:"failed_rows"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketNumber string                `json:"ticket_number"`
	Priority     domain.TicketPriority `json:"priority"`
	Title        string                `json:"title"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketCommentAddedPayload payload.
type TicketCommentAddedPayload struct {
	Author      string                   `json:"author"`
	AuthorType  domain.CommentAuthorType `json:"author_type"`
	BodyPreview string                   `json:"body_preview"`
	IsInternal  bool                     `json:"is_internal"`
}
