package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushHandlerFixtures struct {
	handler  *PushHandler
	notifyUC *mockUsecase.MockOrderNotificationUsecase
}

func createTestPushHandler(t *testing.T, env, provider string) pushHandlerFixtures {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider, PushAudience: "https://worker.example/push"}}
	cfg.Env.Env = env

	fx := pushHandlerFixtures{notifyUC: mockUsecase.NewMockOrderNotificationUsecase(t)}
	fx.handler = NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotifyUC: fx.notifyUC,
	})

	return fx
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/order-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func placedEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:        service.EventOrderPlaced,
		OrderID:     "9f1c6a38-3b7e-4a43-9d0a-2f4b8c9e1a11",
		UserID:      "0c5a1f7e-6b6d-4c1b-8a55-3d8e2f0b7c22",
		Status:      "created",
		TotalAmount: "54.98",
		ItemCount:   3,
	}
}

func TestPushHandler_DeliversEvent(t *testing.T) {
	fx := createTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
	event := placedEvent()

	fx.notifyUC.EXPECT().
		NotifyOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.OrderID == event.OrderID && e.UserID == event.UserID && e.Type == service.EventOrderPlaced
		})).
		Return(&usecase.PushResult{Sent: 2}, nil)

	rec := servePush(fx.handler, pushBody(t, event, map[string]string{"request_id": "req-7"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreFailureAsksForRetry(t *testing.T) {
	fx := createTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	fx.notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(context.DeadlineExceeded, "failed to find devices for push"))

	rec := servePush(fx.handler, pushBody(t, placedEvent(), nil), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedPayloads(t *testing.T) {
	fx := createTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	t.Run("not base64", func(t *testing.T) {
		rec := servePush(fx.handler, `{"message":{"data":"%%%"}}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not an event", func(t *testing.T) {
		body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2")) + `"}}`
		rec := servePush(fx.handler, body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad user id", func(t *testing.T) {
		fx.notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidInput.WithDetails("event user_id is not a UUID")).Once()

		event := placedEvent()
		event.UserID = "nobody"
		rec := servePush(fx.handler, pushBody(t, event, nil), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_OtherFailuresAreAcknowledged(t *testing.T) {
	fx := createTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

	fx.notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rec := servePush(fx.handler, pushBody(t, placedEvent(), nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesGoogleTokenOutsideDevelop(t *testing.T) {
	fx := createTestPushHandler(t, constants.EnvProduction, constants.PubSubProviderGoogle)

	var gotAudience string
	fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "signed" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	t.Run("missing token", func(t *testing.T) {
		rec := servePush(fx.handler, pushBody(t, placedEvent(), nil), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := servePush(fx.handler, pushBody(t, placedEvent(), nil), "Bearer forged")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		fx.notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).Return(&usecase.PushResult{}, nil).Once()

		rec := servePush(fx.handler, pushBody(t, placedEvent(), nil), "Bearer signed")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://worker.example/push", gotAudience)
	})
}

func TestPushHandler_DevelopSkipsTokenCheck(t *testing.T) {
	fx := createTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderGoogle)

	assert.False(t, fx.handler.verifyPushAuth)
}
