package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice is idempotent per (user, client device id). A token that
// moved to this user from another account stops notifying the old account.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("device payload is required")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: strings.TrimSpace(deviceInfo.FCMToken),
		DeviceID: strings.TrimSpace(deviceInfo.DeviceID),
		Platform: strings.ToLower(strings.TrimSpace(deviceInfo.Platform)),
	}
	if device.FCMToken == "" || device.DeviceID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("fcmToken and deviceId are required")
	}

	released, err := srv.deviceRepo.ReleaseToken(ctx, device.FCMToken, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to release device token")
	}
	if released > 0 {
		srv.log(ctx).Info("Device token moved between accounts",
			slog.String("userID", userID.String()),
			slog.Int64("released", released),
		)
	}

	stored, err := srv.deviceRepo.Upsert(ctx, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered",
		slog.String("userID", userID.String()),
		slog.String("deviceID", stored.ID.String()),
		slog.String("platform", stored.Platform),
	)

	return stored, nil
}

func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// DeactivateDevice removes a device (soft delete); only the owner may do so.
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return domainerrors.ErrForbidden.WithDetails("device belongs to another user")
	}

	if err := srv.deviceRepo.Delete(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
