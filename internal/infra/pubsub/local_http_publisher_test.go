package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.OrderEvent{
		RequestID:   "req-1",
		Type:        service.EventOrderPlaced,
		OrderID:     "o-1",
		UserID:      "u-1",
		Status:      "created",
		TotalAmount: "42.00",
		ItemCount:   2,
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "o-1", received.Message.Attributes["order_id"])
	assert.Equal(t, service.EventOrderPlaced, received.Message.Attributes["type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_RequestIDFromContext(t *testing.T) {
	var received PubSubPushMessage
	var header string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ctx := deliverycontext.WithRequestID(context.Background(), "api-req-9")
	event := &service.OrderEvent{Type: service.EventOrderStatusChanged, OrderID: "o-2", Status: "processing"}

	require.NoError(t, NewLocalHTTPPublisher(server.URL, newDiscardLogger()).PublishOrderEvent(ctx, event))

	assert.Equal(t, "api-req-9", header)
	assert.Equal(t, "api-req-9", received.Message.Attributes["request_id"])
	assert.Equal(t, "projects/local/subscriptions/storefront-order-events", received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, newDiscardLogger()).
		PublishOrderEvent(context.Background(), &service.OrderEvent{Type: service.EventOrderPlaced, OrderID: "o-1"})

	assert.EqualError(t, err, "worker returned non-success status: 503")
}

func TestNewConfiguredPublisher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr string
	}{
		{"local without endpoint", config.PubSubConfig{Provider: "local"}, "local endpoint is required for local provider"},
		{"google without project", config.PubSubConfig{Provider: "google", TopicID: "t"}, "project ID is required for google provider"},
		{"google without topic", config.PubSubConfig{Provider: "google", ProjectID: "p"}, "topic ID is required for google provider"},
		{"unknown", config.PubSubConfig{Provider: "kafka"}, "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, err := newConfiguredPublisher(context.Background(), &cfg, newDiscardLogger())
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	p := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, p.PublishOrderEvent(context.Background(), &service.OrderEvent{OrderID: "o-1"}))
	assert.NoError(t, p.Close())
}
