package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusPending    TicketStatus = "Pending"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// KnownStatuses lists every accepted ticket status.
var KnownStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusPending,
	TicketStatusResolved,
	TicketStatusClosed,
}

// IsValid reports whether the status is one of the known states.
func (s TicketStatus) IsValid() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// TicketPriority enumerates SLA urgency tiers.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// DueDateOffset returns the resolution window granted by the priority tier.
func (p TicketPriority) DueDateOffset() time.Duration {
	switch p {
	case TicketPriorityCritical:
		return 4 * time.Hour
	case TicketPriorityHigh:
		return 24 * time.Hour
	case TicketPriorityMedium:
		return 72 * time.Hour
	default:
		return 168 * time.Hour
	}
}

// SLATargets returns the committed response/resolution hours for the tier.
func (p TicketPriority) SLATargets() SLA {
	switch p {
	case TicketPriorityCritical:
		return SLA{ResponseTime: 1, ResolutionTime: 4}
	case TicketPriorityHigh:
		return SLA{ResponseTime: 4, ResolutionTime: 24}
	case TicketPriorityMedium:
		return SLA{ResponseTime: 8, ResolutionTime: 72}
	default:
		return SLA{ResponseTime: 24, ResolutionTime: 168}
	}
}

// Requester identifies who submitted a request.
type Requester struct {
	Name       string
	Email      string
	Department string
}

// Assignee identifies the staff member handling a ticket.
type Assignee struct {
	Name  string
	Email string
}

// SLA captures the committed response/resolution targets in hours.
type SLA struct {
	ResponseTime   int
	ResolutionTime int
	Breached       bool
}

// Ticket is the aggregate for service requests and incidents.
type Ticket struct {
	ID           string
	TicketNumber string
	Title        string
	Description  string
	Category     string
	Priority     TicketPriority
	Status       TicketStatus
	Requester    Requester
	Assignee     *Assignee
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DueDate      time.Time
	ResolvedAt   *time.Time
	Resolution   *string
	Comments     []Comment
	Treatments   []Treatment
	Evaluations  []Evaluation
	SLA          SLA
}
