package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/itsm-portal/internal/config"
	"github.com/spec-kit/itsm-portal/internal/events"
)

// NotificationService turns domain events into notifications. Delivery is
// stubbed: each channel logs what it would send, gated on its endpoint
// being configured.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to the events that produce notifications.
// Requesters are mailed about their own tickets; operator-facing events go
// to the webhook.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventImportCompleted, n.notify(webhookChannel))
	n.dispatcher.Subscribe(events.EventTicketCreated, n.notify(emailChannel|webhookChannel))
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.notify(webhookChannel))
	n.dispatcher.Subscribe(events.EventTicketCommentAdded, n.notify(emailChannel))
}

type channelMask uint8

const (
	emailChannel channelMask = 1 << iota
	webhookChannel
)

func (n *NotificationService) notify(channels channelMask) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info("notification event",
			zap.String("event_type", string(event.Type)),
			zap.String("ticket_id", event.TicketID),
			zap.Any("payload", event.Payload))

		if channels&emailChannel != 0 && strings.TrimSpace(n.cfg.EmailFrom) != "" {
			n.logger.Debug("would send email",
				zap.String("from", n.cfg.EmailFrom),
				zap.String("event_type", string(event.Type)),
				zap.String("ticket_id", event.TicketID))
		}
		if channels&webhookChannel != 0 && strings.TrimSpace(n.cfg.WebhookURL) != "" {
			n.logger.Debug("would call webhook",
				zap.String("url", n.cfg.WebhookURL),
				zap.String("event_type", string(event.Type)),
				zap.String("ticket_id", event.TicketID))
		}
		return nil
	}
}
