package worker

import "github.com/spec-kit/itsm-portal/internal/service"

// StartNotificationWorker subscribes the notification service to the
// dispatcher so import and ticket events produce notifications for the
// process lifetime. The dispatcher is synchronous, so there is no goroutine
// to manage or stop.
func StartNotificationWorker(notifications *service.NotificationService) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers()
}
