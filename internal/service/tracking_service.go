package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/store"
	"github.com/spec-kit/itsm-portal/pkg/util"
)

// Submission is the requester-facing projection of a ticket.
type Submission struct {
	TicketID           string
	TicketNumber       string
	Title              string
	Description        string
	Category           string
	ServiceDepartment  string
	Priority           domain.TicketPriority
	Status             domain.TicketStatus
	SubmittedAt        time.Time
	LastUpdate         time.Time
	DueDate            time.Time
	ProgressPercentage int
	Comments           []domain.Comment
}

// TrackingStats summarizes a requester's submissions.
type TrackingStats struct {
	TotalSubmissions       int
	PendingSubmissions     int
	ResolvedSubmissions    int
	AverageResolutionHours float64
	LastSubmission         *time.Time
}

// TrackingService serves the user-facing request-tracking view.
type TrackingService struct {
	tickets store.TicketStore
}

// NewTrackingService constructs the service.
func NewTrackingService(tickets store.TicketStore) *TrackingService {
	return &TrackingService{tickets: tickets}
}

// SubmissionsForEmail lists the requester's tickets as submissions, newest
// first. Internal comments are filtered out of the projection.
func (s *TrackingService) SubmissionsForEmail(ctx context.Context, email string) ([]Submission, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, util.NewValidationError("email required", nil)
	}

	tickets := s.tickets.ListWithFilter(ctx, store.TicketFilter{RequesterEmail: &email})
	submissions := make([]Submission, 0, len(tickets))
	for i := range tickets {
		submissions = append(submissions, toSubmission(&tickets[i]))
	}
	return submissions, nil
}

// StatsForEmail summarizes the requester's submission history.
func (s *TrackingService) StatsForEmail(ctx context.Context, email string) (TrackingStats, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return TrackingStats{}, util.NewValidationError("email required", nil)
	}

	tickets := s.tickets.ListWithFilter(ctx, store.TicketFilter{RequesterEmail: &email})
	stats := TrackingStats{TotalSubmissions: len(tickets)}
	var resolutionHours float64
	var resolvedWithTime int

	for i := range tickets {
		ticket := &tickets[i]
		switch ticket.Status {
		case domain.TicketStatusResolved, domain.TicketStatusClosed:
			stats.ResolvedSubmissions++
		default:
			stats.PendingSubmissions++
		}
		if ticket.ResolvedAt != nil {
			resolvedWithTime++
			resolutionHours += ticket.ResolvedAt.Sub(ticket.CreatedAt).Hours()
		}
		if stats.LastSubmission == nil || ticket.CreatedAt.After(*stats.LastSubmission) {
			submitted := ticket.CreatedAt
			stats.LastSubmission = &submitted
		}
	}
	if resolvedWithTime > 0 {
		stats.AverageResolutionHours = resolutionHours / float64(resolvedWithTime)
	}
	return stats, nil
}

func toSubmission(ticket *domain.Ticket) Submission {
	visible := make([]domain.Comment, 0, len(ticket.Comments))
	for _, comment := range ticket.Comments {
		if comment.IsInternal {
			continue
		}
		visible = append(visible, comment)
	}

	return Submission{
		TicketID:           ticket.ID,
		TicketNumber:       ticket.TicketNumber,
		Title:              ticket.Title,
		Description:        ticket.Description,
		Category:           ticket.Category,
		ServiceDepartment:  ticket.Requester.Department,
		Priority:           ticket.Priority,
		Status:             ticket.Status,
		SubmittedAt:        ticket.CreatedAt,
		LastUpdate:         ticket.UpdatedAt,
		DueDate:            ticket.DueDate,
		ProgressPercentage: progressFor(ticket.Status),
		Comments:           visible,
	}
}

func progressFor(status domain.TicketStatus) int {
	switch status {
	case domain.TicketStatusOpen:
		return 10
	case domain.TicketStatusInProgress:
		return 50
	case domain.TicketStatusPending:
		return 70
	case domain.TicketStatusResolved:
		return 90
	case domain.TicketStatusClosed:
		return 100
	default:
		return 0
	}
}
