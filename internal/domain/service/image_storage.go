package service

import "context"

// ImageStorage is the product image blob store.
type ImageStorage interface {
	// DeleteImages removes every key it can and returns the joined failures.
	// Missing keys are not failures.
	DeleteImages(ctx context.Context, keys []string) error
}
