// Package storage implements the product image store on gocloud.dev/blob.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted in storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobImageStorage struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %q", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobImageStorage(bucket, cfg.ImagePrefix, params.Logger), nil
}

// NewBlobImageStorage wraps an open bucket. prefix is trimmed from image
// references (for example a public CDN base URL) to obtain object keys.
func NewBlobImageStorage(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{bucket: bucket, prefix: prefix, logger: logger}
}

func (s *blobImageStorage) DeleteImages(ctx context.Context, keys []string) error {
	var errs []error
	for _, ref := range keys {
		key := strings.TrimPrefix(strings.TrimPrefix(ref, s.prefix), "/")
		if key == "" {
			continue
		}

		err := s.bucket.Delete(ctx, key)
		switch {
		case err == nil:
			s.logger.Debug("image deleted", slog.String("key", key))
		case gcerrors.Code(err) == gcerrors.NotFound:
			s.logger.Debug("image already absent", slog.String("key", key))
		default:
			errs = append(errs, errors.Wrapf(err, "delete %s", key))
		}
	}

	return errors.Join(errs...)
}
