package context

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uuid", id: uuid.NewString(), want: true},
		{name: "short token", id: "req-42", want: true},
		{name: "empty", id: "", want: false},
		{name: "space", id: "req 42", want: false},
		{name: "newline", id: "req\n42", want: false},
		{name: "non ascii", id: "請求", want: false},
		{name: "too long", id: strings.Repeat("a", 129), want: false},
		{name: "max length", id: strings.Repeat("a", 128), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRequestID(tt.id))
		})
	}
}

func TestUserIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(WithUserID(ctx, uuid.Nil))
	assert.False(t, ok)

	userID := uuid.New()
	got, ok := GetUserIDFromContext(WithUserID(ctx, userID))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "r", GetRequestIDFromContext(WithRequestID(context.Background(), "r")))
}
