package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// FCM multicast accepts at most 500 tokens per call.
const pushBatchSize = 500

type orderNotificationService struct {
	deviceRepo          repository.DeviceRepository
	notificationService service.NotificationService
	logger              *slog.Logger
}

// OrderNotificationServiceParams holds dependencies for OrderNotificationService, injected by Fx.
type OrderNotificationServiceParams struct {
	fx.In

	DeviceRepo          repository.DeviceRepository
	NotificationService service.NotificationService
	Logger              *slog.Logger
}

// NewOrderNotificationService is the constructor for orderNotificationService.
func NewOrderNotificationService(params OrderNotificationServiceParams) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		deviceRepo:          params.DeviceRepo,
		notificationService: params.NotificationService,
		logger:              params.Logger,
	}
}

func (srv *orderNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyOrderEvent fans the event out to the owner's active devices. Send
// failures are logged and counted, never returned.
func (srv *orderNotificationService) NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.PushResult, error) {
	if event == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("event is required")
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("event user_id is not a UUID")
	}

	devices, err := srv.deviceRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, asUpstream(err, "failed to find devices for push")
	}

	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, ok := seen[device.FCMToken]; ok {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	result := &usecase.PushResult{}
	if len(tokens) == 0 {
		srv.log(ctx).Debug("No active devices for order event", slog.String("orderID", event.OrderID))

		return result, nil
	}

	title, body := orderEventMessage(event)
	data := map[string]string{
		"type":     event.Type,
		"order_id": event.OrderID,
		"status":   event.Status,
	}

	var invalid []string
	for start := 0; start < len(tokens); start += pushBatchSize {
		batch := tokens[start:min(start+pushBatchSize, len(tokens))]

		sent, failed, invalidTokens, err := srv.notificationService.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			srv.log(ctx).Warn("Push batch failed",
				slog.String("orderID", event.OrderID),
				slog.Int("tokens", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalid = append(invalid, invalidTokens...)
	}

	if len(invalid) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, invalid)
		if err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid device tokens", slog.Int("tokens", len(invalid)), slog.Any("error", err))
		}
		result.Deactivated = deactivated
	}

	srv.log(ctx).Info("Order event pushed",
		slog.String("type", event.Type),
		slog.String("orderID", event.OrderID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int64("deactivated", result.Deactivated),
	)

	return result, nil
}

func orderEventMessage(event *service.OrderEvent) (title, body string) {
	ref := event.OrderID
	if len(ref) > 8 {
		ref = ref[:8]
	}

	switch event.Type {
	case service.EventOrderPlaced:
		return "Order confirmed", fmt.Sprintf("Your order #%s for %s has been placed.", ref, event.TotalAmount)
	case service.EventOrderStatusChanged:
		return "Order update", fmt.Sprintf("Your order #%s is now %s.", ref, event.Status)
	default:
		return "Order update", fmt.Sprintf("There is news about your order #%s.", ref)
	}
}
