package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// PushResult summarizes one fan-out.
type PushResult struct {
	Sent        int
	Failed      int
	Deactivated int64
}

// OrderNotificationUsecase turns order events into device push notifications.
type OrderNotificationUsecase interface {
	// NotifyOrderEvent pushes the event to the order owner's active devices.
	// Store failures are returned as UPSTREAM_FAILURE so the message is redelivered.
	NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*PushResult, error)
}
