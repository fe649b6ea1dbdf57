package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/sequence"
)

// Synthesizer converts validated form records into ticket entities. It is
// total over its input: every record yields exactly one ticket.
type Synthesizer struct {
	sequencer sequence.Sequencer
	fallback  sequence.Sequencer
	now       func() time.Time
}

// NewSynthesizer constructs a synthesizer drawing ticket numbers from the
// given sequencer.
func NewSynthesizer(sequencer sequence.Sequencer) *Synthesizer {
	return &Synthesizer{
		sequencer: sequencer,
		fallback:  sequence.NewMemorySequencer(),
		now:       time.Now,
	}
}

// Synthesize mints one ticket per record, order-preserving. A ticket starts
// Open with empty comment/treatment/evaluation collections; due date and SLA
// targets derive from the record's priority.
func (s *Synthesizer) Synthesize(ctx context.Context, records []domain.FormRecord) []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(records))
	year := s.now().Year()

	for _, record := range records {
		prefix := ticketPrefix(record.ServiceType)
		sla := record.Priority.SLATargets()

		tickets = append(tickets, domain.Ticket{
			ID:           record.ID,
			TicketNumber: fmt.Sprintf("%s-%d-%03d", prefix, year, s.nextNumber(ctx, prefix, year)),
			Title:        record.Title,
			Description:  record.Description,
			Category:     record.Category,
			Priority:     record.Priority,
			Status:       domain.TicketStatusOpen,
			Requester: domain.Requester{
				Name:       record.Name,
				Email:      record.Email,
				Department: record.Department,
			},
			CreatedAt:   record.Timestamp,
			UpdatedAt:   record.Timestamp,
			DueDate:     record.Timestamp.Add(record.Priority.DueDateOffset()),
			Comments:    []domain.Comment{},
			Treatments:  []domain.Treatment{},
			Evaluations: []domain.Evaluation{},
			SLA:         sla,
		})
	}
	return tickets
}

// nextNumber consults the configured sequencer and falls back to the
// process-local counter when it is unreachable, keeping synthesis total.
func (s *Synthesizer) nextNumber(ctx context.Context, prefix string, year int) int64 {
	scope := fmt.Sprintf("%s-%d", prefix, year)
	seq, err := s.sequencer.Next(ctx, scope)
	if err != nil {
		seq, _ = s.fallback.Next(ctx, scope)
	}
	return seq
}

func ticketPrefix(serviceType string) string {
	service := strings.ToLower(serviceType)
	switch {
	case strings.Contains(service, "incident"):
		return "INC"
	case strings.Contains(service, "demande") || strings.Contains(service, "request"):
		return "REQ"
	case strings.Contains(service, "changement") || strings.Contains(service, "change"):
		return "CHG"
	default:
		return "REQ"
	}
}
