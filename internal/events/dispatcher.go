package events

import (
	"context"
	"errors"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher allows event publication and subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// memoryDispatcher fans events out synchronously to subscribed handlers.
// One handler failing does not stop the others; failures are joined into
// the returned error.
type memoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &memoryDispatcher{handlers: make(map[EventType][]EventHandler)}
}

func (d *memoryDispatcher) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, handler := range d.snapshot(event.Type) {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *memoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *memoryDispatcher) snapshot(eventType EventType) []EventHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]EventHandler(nil), d.handlers[eventType]...)
}
