package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/events"
	"github.com/spec-kit/itsm-portal/internal/store"
	"github.com/spec-kit/itsm-portal/pkg/util"
)

// TicketService coordinates dashboard workflows over the ticket collection.
type TicketService struct {
	tickets    store.TicketStore
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketStore store.TicketStore
	Dispatcher  events.Dispatcher
}

// TicketListFilter describes dashboard listing filters.
type TicketListFilter struct {
	Statuses       []domain.TicketStatus
	Priorities     []domain.TicketPriority
	Category       *string
	RequesterEmail *string
	SearchTerm     *string
	Limit          int
	Offset         int
}

// TicketUpdateInput describes a partial ticket update.
type TicketUpdateInput struct {
	Status        *domain.TicketStatus
	AssigneeName  *string
	AssigneeEmail *string
	Resolution    *string
}

// CommentInput describes a new comment.
type CommentInput struct {
	Author     string
	AuthorType domain.CommentAuthorType
	Content    string
	IsInternal bool
}

// TreatmentInput describes a new technical intervention.
type TreatmentInput struct {
	Technician      string
	Action          string
	Description     string
	Status          domain.TreatmentStatus
	DurationMinutes *int
	NextAction      *string
}

// EvaluationInput describes a new assessment.
type EvaluationInput struct {
	Evaluator        string
	Type             domain.EvaluationType
	Severity         domain.TicketPriority
	Impact           domain.TicketPriority
	Urgency          domain.TicketPriority
	RootCause        *string
	RiskAssessment   string
	Recommendations  []string
	FollowUpRequired bool
	FollowUpDate     *time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketStore,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// ListTickets returns tickets matching the filter, newest first.
func (s *TicketService) ListTickets(ctx context.Context, filter TicketListFilter) []domain.Ticket {
	return s.tickets.ListWithFilter(ctx, store.TicketFilter{
		Statuses:       filter.Statuses,
		Priorities:     filter.Priorities,
		Category:       filter.Category,
		RequesterEmail: filter.RequesterEmail,
		SearchTerm:     filter.SearchTerm,
		Limit:          filter.Limit,
		Offset:         filter.Offset,
	})
}

// GetTicket fetches one ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ticket, nil
}

// UpdateTicket applies a partial update to a ticket.
func (s *TicketService) UpdateTicket(ctx context.Context, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, util.NewValidationError("invalid ticket status", map[string]any{"status": *input.Status})
	}

	var oldStatus domain.TicketStatus
	if input.Status != nil {
		current, err := s.tickets.GetByID(ctx, id)
		if err != nil {
			return nil, mapStoreError(err)
		}
		oldStatus = current.Status
	}

	update := store.TicketUpdate{
		Status:     input.Status,
		Resolution: input.Resolution,
	}
	if input.AssigneeName != nil {
		assignee := domain.Assignee{Name: strings.TrimSpace(*input.AssigneeName)}
		if input.AssigneeEmail != nil {
			assignee.Email = strings.TrimSpace(*input.AssigneeEmail)
		}
		update.Assignee = &assignee
	}

	ticket, err := s.tickets.ApplyUpdate(ctx, id, update)
	if err != nil {
		return nil, mapStoreError(err)
	}

	if input.Status != nil && oldStatus != ticket.Status {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	return ticket, nil
}

// AddComment appends a comment to a ticket thread.
func (s *TicketService) AddComment(ctx context.Context, id string, input CommentInput) (*domain.Ticket, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, util.NewValidationError("comment content required", nil)
	}
	authorType := input.AuthorType
	if authorType != domain.AuthorTypeUser && authorType != domain.AuthorTypeITStaff {
		authorType = domain.AuthorTypeUser
	}

	comment := domain.Comment{
		ID:         uuid.NewString(),
		Author:     strings.TrimSpace(input.Author),
		AuthorType: authorType,
		Content:    content,
		Timestamp:  s.now(),
		IsInternal: input.IsInternal,
	}
	ticket, err := s.tickets.ApplyUpdate(ctx, id, store.TicketUpdate{Comment: &comment})
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticket.ID,
		Payload: events.TicketCommentAddedPayload{
			Author:      comment.Author,
			AuthorType:  comment.AuthorType,
			BodyPreview: stringPreview(comment.Content, 120),
			IsInternal:  comment.IsInternal,
		},
	})
	return ticket, nil
}

// AddTreatment appends a technical intervention to a ticket.
func (s *TicketService) AddTreatment(ctx context.Context, id string, input TreatmentInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Technician) == "" || strings.TrimSpace(input.Action) == "" {
		return nil, util.NewValidationError("technician and action required", nil)
	}
	status := input.Status
	if status == "" {
		status = domain.TreatmentStatusPlanned
	}

	treatment := domain.Treatment{
		ID:              uuid.NewString(),
		TreatmentDate:   s.now(),
		Technician:      strings.TrimSpace(input.Technician),
		Action:          strings.TrimSpace(input.Action),
		Description:     strings.TrimSpace(input.Description),
		Status:          status,
		DurationMinutes: input.DurationMinutes,
		NextAction:      input.NextAction,
	}
	ticket, err := s.tickets.ApplyUpdate(ctx, id, store.TicketUpdate{Treatment: &treatment})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ticket, nil
}

// AddEvaluation appends an assessment to a ticket.
func (s *TicketService) AddEvaluation(ctx context.Context, id string, input EvaluationInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Evaluator) == "" {
		return nil, util.NewValidationError("evaluator required", nil)
	}

	evaluation := domain.Evaluation{
		ID:               uuid.NewString(),
		EvaluationDate:   s.now(),
		Evaluator:        strings.TrimSpace(input.Evaluator),
		Type:             input.Type,
		Severity:         input.Severity,
		Impact:           input.Impact,
		Urgency:          input.Urgency,
		RootCause:        input.RootCause,
		RiskAssessment:   strings.TrimSpace(input.RiskAssessment),
		Recommendations:  input.Recommendations,
		FollowUpRequired: input.FollowUpRequired,
		FollowUpDate:     input.FollowUpDate,
	}
	ticket, err := s.tickets.ApplyUpdate(ctx, id, store.TicketUpdate{Evaluation: &evaluation})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ticket, nil
}

// Metrics computes dashboard figures over the full collection.
func (s *TicketService) Metrics(ctx context.Context) domain.Metrics {
	tickets := s.tickets.ListWithFilter(ctx, store.TicketFilter{})
	now := s.now()

	metrics := domain.Metrics{TotalTickets: len(tickets)}
	var resolutionHours float64
	var resolvedCount int
	var unbreached int

	for i := range tickets {
		ticket := &tickets[i]
		switch ticket.Status {
		case domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusPending:
			metrics.OpenTickets++
		}
		if ticket.Priority == domain.TicketPriorityCritical {
			metrics.CriticalTickets++
		}
		if !ticket.SLA.Breached {
			unbreached++
		}
		if ticket.ResolvedAt != nil {
			resolvedCount++
			resolutionHours += ticket.ResolvedAt.Sub(ticket.CreatedAt).Hours()
			if sameDay(*ticket.ResolvedAt, now) {
				metrics.ResolvedToday++
			}
		}
	}

	if resolvedCount > 0 {
		metrics.AverageResolutionTime = resolutionHours / float64(resolvedCount)
	}
	if len(tickets) > 0 {
		metrics.SLACompliance = float64(unbreached) / float64(len(tickets)) * 100
	} else {
		metrics.SLACompliance = 100
	}
	return metrics
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return util.NewNotFound("ticket", nil)
	}
	return err
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
