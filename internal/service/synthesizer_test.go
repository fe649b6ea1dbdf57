package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/sequence"
)

func formRecord(serviceType string, priority domain.TicketPriority) domain.FormRecord {
	return domain.FormRecord{
		ID:          uuid.NewString(),
		Timestamp:   time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC),
		Email:       "a@b.com",
		Name:        "Jean Dupont",
		Department:  "IT",
		ServiceType: serviceType,
		Priority:    priority,
		Title:       "Titre",
		Description: "Desc",
		Category:    "Support",
		Urgency:     "Moyenne",
		Impact:      "Moyen",
	}
}

func TestSynthesizeTicketNumber(t *testing.T) {
	synth := NewSynthesizer(sequence.NewMemorySequencer())
	year := time.Now().Year()

	tickets := synth.Synthesize(context.Background(), []domain.FormRecord{
		formRecord("Incident", domain.TicketPriorityHigh),
	})

	require.Len(t, tickets, 1)
	assert.Equal(t, fmt.Sprintf("INC-%d-001", year), tickets[0].TicketNumber)
}

func TestSynthesizePrefixes(t *testing.T) {
	tests := []struct {
		serviceType string
		prefix      string
	}{
		{"Incident", "INC"},
		{"Incident réseau", "INC"},
		{"Demande générale", "REQ"},
		{"Service request", "REQ"},
		{"Changement de poste", "CHG"},
		{"Change management", "CHG"},
		{"Autre chose", "REQ"},
		{"", "REQ"},
	}

	for _, tt := range tests {
		t.Run(tt.serviceType, func(t *testing.T) {
			assert.Equal(t, tt.prefix, ticketPrefix(tt.serviceType))
		})
	}
}

func TestSynthesizeSequenceContinuesAcrossBatches(t *testing.T) {
	synth := NewSynthesizer(sequence.NewMemorySequencer())
	ctx := context.Background()
	year := time.Now().Year()

	first := synth.Synthesize(ctx, []domain.FormRecord{
		formRecord("Incident", domain.TicketPriorityHigh),
		formRecord("Incident", domain.TicketPriorityLow),
	})
	second := synth.Synthesize(ctx, []domain.FormRecord{
		formRecord("Incident", domain.TicketPriorityMedium),
	})

	assert.Equal(t, fmt.Sprintf("INC-%d-001", year), first[0].TicketNumber)
	assert.Equal(t, fmt.Sprintf("INC-%d-002", year), first[1].TicketNumber)
	// a second import must not restart the counter
	assert.Equal(t, fmt.Sprintf("INC-%d-003", year), second[0].TicketNumber)
}

func TestSynthesizeScopesByPrefix(t *testing.T) {
	synth := NewSynthesizer(sequence.NewMemorySequencer())
	year := time.Now().Year()

	tickets := synth.Synthesize(context.Background(), []domain.FormRecord{
		formRecord("Incident", domain.TicketPriorityHigh),
		formRecord("Demande générale", domain.TicketPriorityLow),
	})

	assert.Equal(t, fmt.Sprintf("INC-%d-001", year), tickets[0].TicketNumber)
	assert.Equal(t, fmt.Sprintf("REQ-%d-001", year), tickets[1].TicketNumber)
}

func TestSynthesizeDueDateAndSLA(t *testing.T) {
	tests := []struct {
		priority       domain.TicketPriority
		dueOffset      time.Duration
		responseTime   int
		resolutionTime int
	}{
		{domain.TicketPriorityCritical, 4 * time.Hour, 1, 4},
		{domain.TicketPriorityHigh, 24 * time.Hour, 4, 24},
		{domain.TicketPriorityMedium, 72 * time.Hour, 8, 72},
		{domain.TicketPriorityLow, 168 * time.Hour, 24, 168},
	}

	synth := NewSynthesizer(sequence.NewMemorySequencer())
	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			record := formRecord("Incident", tt.priority)
			tickets := synth.Synthesize(context.Background(), []domain.FormRecord{record})

			require.Len(t, tickets, 1)
			ticket := tickets[0]
			assert.True(t, ticket.DueDate.Equal(record.Timestamp.Add(tt.dueOffset)))
			assert.Equal(t, tt.responseTime, ticket.SLA.ResponseTime)
			assert.Equal(t, tt.resolutionTime, ticket.SLA.ResolutionTime)
			assert.False(t, ticket.SLA.Breached)
		})
	}
}

func TestSynthesizeInitialState(t *testing.T) {
	synth := NewSynthesizer(sequence.NewMemorySequencer())
	record := formRecord("Incident", domain.TicketPriorityHigh)

	tickets := synth.Synthesize(context.Background(), []domain.FormRecord{record})

	require.Len(t, tickets, 1)
	ticket := tickets[0]
	assert.Equal(t, record.ID, ticket.ID)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, record.Email, ticket.Requester.Email)
	assert.Equal(t, record.Name, ticket.Requester.Name)
	assert.Equal(t, record.Department, ticket.Requester.Department)
	assert.True(t, ticket.CreatedAt.Equal(record.Timestamp))
	assert.Empty(t, ticket.Comments)
	assert.Empty(t, ticket.Treatments)
	assert.Empty(t, ticket.Evaluations)
}

func TestSynthesizeEmptyInput(t *testing.T) {
	synth := NewSynthesizer(sequence.NewMemorySequencer())

	tickets := synth.Synthesize(context.Background(), nil)

	assert.Empty(t, tickets)
}
