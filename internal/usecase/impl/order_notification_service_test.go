package impl

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderNotificationFixtures struct {
	service      usecase.OrderNotificationUsecase
	deviceRepo   *mockRepo.MockDeviceRepository
	notification *mockSvc.MockNotificationService
}

func createTestOrderNotificationService(t *testing.T) orderNotificationFixtures {
	fx := orderNotificationFixtures{
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		notification: mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewOrderNotificationService(OrderNotificationServiceParams{
		DeviceRepo:          fx.deviceRepo,
		NotificationService: fx.notification,
		Logger:              newDiscardLogger(),
	})

	return fx
}

func placedEvent(userID uuid.UUID) *service.OrderEvent {
	return &service.OrderEvent{
		Type:        service.EventOrderPlaced,
		OrderID:     uuid.NewString(),
		UserID:      userID.String(),
		Status:      "created",
		TotalAmount: "54.98",
		ItemCount:   2,
	}
}

func TestOrderNotificationService_BatchesAndDeactivatesInvalidTokens(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := make([]*entity.UserDevice, 0, 501)
	for i := range 501 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	fx.deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return(devices, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }),
			"Order confirmed", mock.AnythingOfType("string"), mock.Anything).
		Return(499, 1, []string{"token-7"}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"token-500"}, "Order confirmed", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-7"}).Return(int64(1), nil)

	result, err := fx.service.NotifyOrderEvent(ctx, placedEvent(userID))

	require.NoError(t, err)
	assert.Equal(t, 500, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, int64(1), result.Deactivated)
}

func TestOrderNotificationService_SendFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return([]*entity.UserDevice{
		{FCMToken: "a"}, {FCMToken: "a"}, {FCMToken: ""},
	}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	result, err := fx.service.NotifyOrderEvent(ctx, placedEvent(userID))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestOrderNotificationService_NoDevices(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return([]*entity.UserDevice{}, nil)

	result, err := fx.service.NotifyOrderEvent(ctx, placedEvent(userID))

	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestOrderNotificationService_StoreFailureIsUpstream(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return(nil, errors.New("connection refused"))

	_, err := fx.service.NotifyOrderEvent(ctx, placedEvent(userID))

	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}

func TestOrderNotificationService_MalformedUserID(t *testing.T) {
	fx := createTestOrderNotificationService(t)

	event := placedEvent(uuid.New())
	event.UserID = "not-a-uuid"

	_, err := fx.service.NotifyOrderEvent(context.Background(), event)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestOrderEventMessage(t *testing.T) {
	event := &service.OrderEvent{Type: service.EventOrderStatusChanged, OrderID: "12345678-aaaa", Status: "fulfilled"}

	title, body := orderEventMessage(event)

	assert.Equal(t, "Order update", title)
	assert.Equal(t, "Your order #12345678 is now fulfilled.", body)
}
