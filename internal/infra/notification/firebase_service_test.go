package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
)

func TestCollectInvalidTokens_IgnoresSuccessAndTransientFailures(t *testing.T) {
	tokens := []string{"ok", "transient", "missing"}
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "m1"},
		{Error: errors.New("deadline exceeded")},
		nil,
	}

	assert.Empty(t, collectInvalidTokens(tokens, responses))
}

func TestNoopNotificationService(t *testing.T) {
	ok, failed, invalid, err := NewNoopNotificationService().SendBatchNotification(context.Background(), []string{"t"}, "title", "body", nil)

	assert.NoError(t, err)
	assert.Zero(t, ok)
	assert.Zero(t, failed)
	assert.Nil(t, invalid)
}
