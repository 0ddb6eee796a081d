package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice_NormalizesPlatform(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})
	userID := uuid.New()

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, mock.MatchedBy(func(in *usecase.DeviceInfo) bool {
			return in.Platform == "ios" && in.FCMToken == "tok" && in.DeviceID == "phone-1"
		})).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"fcmToken":"tok","deviceId":"phone-1","platform":"iOS"}`, &userID)
	require.NoError(t, h.RegisterDevice(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeviceHandler_DeactivateDevice_Forbidden(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})
	userID := uuid.New()
	deviceID := uuid.New()

	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).
		Return(domainerrors.ErrForbidden.WithDetails("device belongs to another user"))

	c, rec := newTestContext(http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())
	require.NoError(t, h.DeactivateDevice(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, decodeError(t, rec).Details)
}
