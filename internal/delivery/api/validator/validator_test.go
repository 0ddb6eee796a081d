package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.AddItemInput{ProductID: uuid.New(), Quantity: 0})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "quantity")
}

func TestValidator_NestedAndBounds(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.BulkAddInput{
		ProductIDs: []uuid.UUID{uuid.New()},
		Quantity:   1000,
	})

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "quantity must be at most 999", appErr.Details())
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"}))
	assert.Error(t, v.Validate(&usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}))
}
