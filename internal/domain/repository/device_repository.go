package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the devices that receive order push notifications.
// A device is identified by (user, client device id).
type DeviceRepository interface {
	// Upsert registers the device or, when the user already has it, replaces
	// its token and platform and reactivates it. Returns the stored row.
	Upsert(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	// ReleaseToken deactivates devices of other users still holding fcmToken.
	ReleaseToken(ctx context.Context, fcmToken string, keepUserID uuid.UUID) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListByUser returns newest first; activeOnly drops deactivated devices.
	ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)

	// DeactivateByTokens marks every device holding one of tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)

	// Delete soft-deletes the device.
	Delete(ctx context.Context, id uuid.UUID) error
}
