package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	derived := ErrInsufficientStock.WithDetails("product p1 has 2 left")

	assert.True(t, errors.Is(derived, ErrInsufficientStock))
	assert.False(t, errors.Is(derived, ErrCartEmpty))
	assert.Equal(t, http.StatusConflict, derived.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", derived.ErrorCode())
	assert.Equal(t, "product p1 has 2 left", derived.Details())
	assert.Equal(t, "insufficient stock: product p1 has 2 left", derived.Error())
}

func TestBaseError_WithMessagef(t *testing.T) {
	err := ErrCategoryNameConflict.WithMessagef("category name %q already exists", "Shoes")

	assert.Equal(t, `category name "Shoes" already exists`, err.Message())
	assert.Equal(t, "CATEGORY_NAME_CONFLICT", err.ErrorCode())
	assert.True(t, errors.Is(err, ErrCategoryNameConflict))
}

func TestBaseError_WrapMessageStillResolvesAppError(t *testing.T) {
	wrapped := ErrOrderNotFound.WrapMessage("loading order")

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.True(t, errors.Is(wrapped, ErrOrderNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "UPSTREAM_FAILURE", err.ErrorCode())
	assert.Equal(t, "insert order", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrUpstreamFailure))
}
