package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/itsm-portal/internal/domain"
	"github.com/spec-kit/itsm-portal/internal/events"
	"github.com/spec-kit/itsm-portal/internal/importer"
	"github.com/spec-kit/itsm-portal/internal/observability"
	"github.com/spec-kit/itsm-portal/internal/store"
)

// ImportService runs the spreadsheet import pipeline: decode, parse,
// synthesize tickets and merge them into the ticket collection.
type ImportService struct {
	mapping     importer.ColumnMapping
	synthesizer *Synthesizer
	tickets     store.TicketStore
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// ImportDependencies bundles collaborators for the import service.
type ImportDependencies struct {
	Mapping     importer.ColumnMapping
	Synthesizer *Synthesizer
	TicketStore store.TicketStore
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NewImportService constructs the service.
func NewImportService(deps ImportDependencies) *ImportService {
	return &ImportService{
		mapping:     deps.Mapping,
		synthesizer: deps.Synthesizer,
		tickets:     deps.TicketStore,
		dispatcher:  deps.Dispatcher,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
	}
}

// ImportFile processes one uploaded workbook. Failures are captured in the
// result, never raised: a partially failed file still yields the tickets of
// its valid rows. overrides replace expected header names per logical field.
func (s *ImportService) ImportFile(ctx context.Context, data []byte, overrides map[string]string) (importer.Result, []domain.Ticket) {
	mapping := s.mapping.WithOverrides(overrides)
	result := importer.NewProcessor(mapping).Process(data)

	tickets := s.synthesizer.Synthesize(ctx, result.Records)
	s.tickets.Insert(ctx, tickets)
	s.metrics.RecordImport(result.ProcessedRows)

	for _, ticket := range tickets {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketCreated,
			TicketID: ticket.ID,
			Payload: events.TicketCreatedPayload{
				TicketNumber: ticket.TicketNumber,
				Priority:     ticket.Priority,
				Title:        ticket.Title,
			},
		})
	}
	s.publish(ctx, events.Event{
		Type: events.EventImportCompleted,
		Payload: events.ImportCompletedPayload{
			TotalRows:     result.TotalRows,
			ProcessedRows: result.ProcessedRows,
			FailedRows:    len(result.Errors),
		},
	})

	s.logger.Info("spreadsheet import processed",
		zap.Bool("success", result.Success),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("processed_rows", result.ProcessedRows),
		zap.Int("failed_rows", len(result.Errors)),
	)
	return result, tickets
}

// Template returns the downloadable template workbook bytes.
func (s *ImportService) Template() ([]byte, error) {
	return importer.BuildTemplate()
}

func (s *ImportService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
