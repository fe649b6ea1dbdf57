package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/itsm-portal/internal/domain"
)

// ErrNotFound is returned when a ticket id is unknown.
var ErrNotFound = errors.New("ticket not found")

// TicketFilter captures listing parameters.
type TicketFilter struct {
	Statuses       []domain.TicketStatus
	Priorities     []domain.TicketPriority
	Category       *string
	RequesterEmail *string
	SearchTerm     *string
	Limit          int
	Offset         int
}

// TicketUpdate describes a partial update; nil fields are left untouched,
// the appended entries are added to their collections.
type TicketUpdate struct {
	Status     *domain.TicketStatus
	Assignee   *domain.Assignee
	Resolution *string
	Comment    *domain.Comment
	Treatment  *domain.Treatment
	Evaluation *domain.Evaluation
}

// TicketStore is the in-memory ticket collection shared by the portal
// surfaces. The import pipeline inserts, the dashboard reads and updates.
type TicketStore interface {
	Insert(ctx context.Context, tickets []domain.Ticket)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) []domain.Ticket
	ApplyUpdate(ctx context.Context, id string, update TicketUpdate) (*domain.Ticket, error)
	Count(ctx context.Context) int
}

type memoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.Ticket
	now   func() time.Time
}

// NewMemoryStore builds a store pre-populated with the given tickets.
func NewMemoryStore(seed []domain.Ticket) TicketStore {
	s := &memoryStore{
		byID: make(map[string]*domain.Ticket),
		now:  time.Now,
	}
	s.Insert(context.Background(), seed)
	return s
}

// Insert prepends the batch so the newest tickets list first, matching the
// dashboard's merge behavior.
func (s *memoryStore) Insert(_ context.Context, tickets []domain.Ticket) {
	if len(tickets) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(tickets))
	for i := range tickets {
		ticket := tickets[i]
		if _, exists := s.byID[ticket.ID]; exists {
			continue
		}
		s.byID[ticket.ID] = &ticket
		ids = append(ids, ticket.ID)
	}
	s.order = append(ids, s.order...)
}

func (s *memoryStore) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *ticket
	return &copied, nil
}

func (s *memoryStore) ListWithFilter(_ context.Context, filter TicketFilter) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Ticket, 0, len(s.order))
	for _, id := range s.order {
		ticket := s.byID[id]
		if matchesFilter(ticket, filter) {
			matched = append(matched, *ticket)
		}
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []domain.Ticket{}
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched
}

func (s *memoryStore) ApplyUpdate(_ context.Context, id string, update TicketUpdate) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if update.Status != nil {
		ticket.Status = *update.Status
		switch *update.Status {
		case domain.TicketStatusResolved, domain.TicketStatusClosed:
			if ticket.ResolvedAt == nil {
				resolvedAt := now
				ticket.ResolvedAt = &resolvedAt
			}
		default:
			ticket.ResolvedAt = nil
		}
	}
	if update.Assignee != nil {
		assignee := *update.Assignee
		ticket.Assignee = &assignee
	}
	if update.Resolution != nil {
		resolution := *update.Resolution
		ticket.Resolution = &resolution
	}
	if update.Comment != nil {
		ticket.Comments = append(ticket.Comments, *update.Comment)
	}
	if update.Treatment != nil {
		ticket.Treatments = append(ticket.Treatments, *update.Treatment)
	}
	if update.Evaluation != nil {
		ticket.Evaluations = append(ticket.Evaluations, *update.Evaluation)
	}
	ticket.UpdatedAt = now

	copied := *ticket
	return &copied, nil
}

func (s *memoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func matchesFilter(ticket *domain.Ticket, filter TicketFilter) bool {
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, ticket.Status) {
		return false
	}
	if len(filter.Priorities) > 0 && !containsPriority(filter.Priorities, ticket.Priority) {
		return false
	}
	if filter.Category != nil && !strings.EqualFold(*filter.Category, ticket.Category) {
		return false
	}
	if filter.RequesterEmail != nil && !strings.EqualFold(*filter.RequesterEmail, ticket.Requester.Email) {
		return false
	}
	if filter.SearchTerm != nil {
		term := strings.ToLower(strings.TrimSpace(*filter.SearchTerm))
		if term != "" {
			haystack := strings.ToLower(ticket.Title + " " + ticket.Description + " " + ticket.TicketNumber)
			if !strings.Contains(haystack, term) {
				return false
			}
		}
	}
	return true
}

func containsStatus(statuses []domain.TicketStatus, status domain.TicketStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func containsPriority(priorities []domain.TicketPriority, priority domain.TicketPriority) bool {
	for _, p := range priorities {
		if p == priority {
			return true
		}
	}
	return false
}
