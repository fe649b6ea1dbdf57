package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/events"
	"github.com/spec-kit/itsm-portal/internal/store"
	"github.com/spec-kit/itsm-portal/pkg/util"
)

func newTicketService(seed []domain.Ticket) (*TicketService, events.Dispatcher) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewTicketService(TicketDependencies{
		TicketStore: store.NewMemoryStore(seed),
		Dispatcher:  dispatcher,
	})
	return svc, dispatcher
}

func metricsFixture(now time.Time) []domain.Ticket {
	resolvedToday := now.Add(-2 * time.Hour)
	resolvedYesterday := now.Add(-30 * time.Hour)
	return []domain.Ticket{
		{
			ID:           "t1",
			TicketNumber: "INC-2025-001",
			Priority:     domain.TicketPriorityCritical,
			Status:       domain.TicketStatusOpen,
			CreatedAt:    now.Add(-3 * time.Hour),
			SLA:          domain.SLA{ResponseTime: 1, ResolutionTime: 4},
		},
		{
			ID:           "t2",
			TicketNumber: "REQ-2025-001",
			Priority:     domain.TicketPriorityMedium,
			Status:       domain.TicketStatusInProgress,
			CreatedAt:    now.Add(-10 * time.Hour),
			SLA:          domain.SLA{ResponseTime: 8, ResolutionTime: 72},
		},
		{
			ID:           "t3",
			TicketNumber: "REQ-2025-002",
			Priority:     domain.TicketPriorityLow,
			Status:       domain.TicketStatusResolved,
			CreatedAt:    resolvedToday.Add(-4 * time.Hour),
			ResolvedAt:   &resolvedToday,
			SLA:          domain.SLA{ResponseTime: 24, ResolutionTime: 168},
		},
		{
			ID:           "t4",
			TicketNumber: "REQ-2025-003",
			Priority:     domain.TicketPriorityHigh,
			Status:       domain.TicketStatusClosed,
			CreatedAt:    resolvedYesterday.Add(-8 * time.Hour),
			ResolvedAt:   &resolvedYesterday,
			SLA:          domain.SLA{ResponseTime: 4, ResolutionTime: 24, Breached: true},
		},
	}
}

func TestMetricsComputation(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTicketService(metricsFixture(now))
	svc.now = func() time.Time { return now }

	metrics := svc.Metrics(context.Background())

	assert.Equal(t, 4, metrics.TotalTickets)
	// Open, In Progress and Pending all count as open work
	assert.Equal(t, 2, metrics.OpenTickets)
	assert.Equal(t, 1, metrics.ResolvedToday)
	assert.Equal(t, 1, metrics.CriticalTickets)
	// (4h + 8h) / 2 resolved tickets
	assert.InDelta(t, 6.0, metrics.AverageResolutionTime, 0.001)
	// 3 of 4 within SLA
	assert.InDelta(t, 75.0, metrics.SLACompliance, 0.001)
}

func TestMetricsEmptyCollection(t *testing.T) {
	svc, _ := newTicketService(nil)

	metrics := svc.Metrics(context.Background())

	assert.Equal(t, 0, metrics.TotalTickets)
	assert.InDelta(t, 100.0, metrics.SLACompliance, 0.001)
	assert.Zero(t, metrics.AverageResolutionTime)
}

func TestUpdateTicketStatusPublishesEvent(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, dispatcher := newTicketService(metricsFixture(now))

	var received []events.Event
	dispatcher.Subscribe(events.EventTicketStatusChanged, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	status := domain.TicketStatusInProgress
	ticket, err := svc.UpdateTicket(context.Background(), "t1", TicketUpdateInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, ticket.Status)
	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(events.TicketStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.TicketStatusOpen, payload.OldStatus)
	assert.Equal(t, domain.TicketStatusInProgress, payload.NewStatus)
}

func TestUpdateTicketSameStatusNoEvent(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, dispatcher := newTicketService(metricsFixture(now))

	var count int
	dispatcher.Subscribe(events.EventTicketStatusChanged, func(_ context.Context, _ events.Event) error {
		count++
		return nil
	})

	status := domain.TicketStatusOpen
	_, err := svc.UpdateTicket(context.Background(), "t1", TicketUpdateInput{Status: &status})

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateTicketInvalidStatus(t *testing.T) {
	svc, _ := newTicketService(nil)

	status := domain.TicketStatus("Archived")
	_, err := svc.UpdateTicket(context.Background(), "t1", TicketUpdateInput{Status: &status})

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, util.CodeValidation, domainErr.Code)
}

func TestUpdateTicketNotFound(t *testing.T) {
	svc, _ := newTicketService(nil)

	status := domain.TicketStatusResolved
	_, err := svc.UpdateTicket(context.Background(), "missing", TicketUpdateInput{Status: &status})

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, util.CodeNotFound, domainErr.Code)
}

func TestUpdateTicketAssignment(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTicketService(metricsFixture(now))

	name := " Marc Petit "
	email := "marc.petit@entreprise.fr"
	ticket, err := svc.UpdateTicket(context.Background(), "t2", TicketUpdateInput{
		AssigneeName:  &name,
		AssigneeEmail: &email,
	})

	require.NoError(t, err)
	require.NotNil(t, ticket.Assignee)
	assert.Equal(t, "Marc Petit", ticket.Assignee.Name)
	assert.Equal(t, email, ticket.Assignee.Email)
}

func TestAddCommentValidation(t *testing.T) {
	svc, _ := newTicketService(nil)

	_, err := svc.AddComment(context.Background(), "t1", CommentInput{Author: "x", Content: "   "})

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, util.CodeValidation, domainErr.Code)
}

func TestAddCommentAppendsAndPublishes(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, dispatcher := newTicketService(metricsFixture(now))

	var received []events.Event
	dispatcher.Subscribe(events.EventTicketCommentAdded, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	ticket, err := svc.AddComment(context.Background(), "t1", CommentInput{
		Author:     "Sophie Martin",
		AuthorType: domain.AuthorTypeITStaff,
		Content:    "Diagnostic en cours",
		IsInternal: true,
	})

	require.NoError(t, err)
	require.Len(t, ticket.Comments, 1)
	assert.Equal(t, "Diagnostic en cours", ticket.Comments[0].Content)
	assert.True(t, ticket.Comments[0].IsInternal)
	assert.NotEmpty(t, ticket.Comments[0].ID)
	require.Len(t, received, 1)
}

func TestAddCommentDefaultsAuthorType(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTicketService(metricsFixture(now))

	ticket, err := svc.AddComment(context.Background(), "t1", CommentInput{
		Author:  "Jean Dupont",
		Content: "Merci pour le suivi",
	})

	require.NoError(t, err)
	require.Len(t, ticket.Comments, 1)
	assert.Equal(t, domain.AuthorTypeUser, ticket.Comments[0].AuthorType)
}

func TestAddTreatmentDefaultsStatus(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTicketService(metricsFixture(now))

	ticket, err := svc.AddTreatment(context.Background(), "t1", TreatmentInput{
		Technician: "Sophie Martin",
		Action:     "Redémarrage du service",
	})

	require.NoError(t, err)
	require.Len(t, ticket.Treatments, 1)
	assert.Equal(t, domain.TreatmentStatusPlanned, ticket.Treatments[0].Status)
}

func TestAddTreatmentValidation(t *testing.T) {
	svc, _ := newTicketService(nil)

	_, err := svc.AddTreatment(context.Background(), "t1", TreatmentInput{Technician: "x"})

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, util.CodeValidation, domainErr.Code)
}

func TestAddEvaluationRequiresEvaluator(t *testing.T) {
	svc, _ := newTicketService(nil)

	_, err := svc.AddEvaluation(context.Background(), "t1", EvaluationInput{})

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, util.CodeValidation, domainErr.Code)
}

func TestListTicketsFiltersByStatus(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTicketService(metricsFixture(now))

	tickets := svc.ListTickets(context.Background(), TicketListFilter{
		Statuses: []domain.TicketStatus{domain.TicketStatusResolved},
	})

	require.Len(t, tickets, 1)
	assert.Equal(t, "t3", tickets[0].ID)
}
