package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobImageStorage_DeleteImages(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "products/a.png", []byte("a"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "products/b.png", []byte("b"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "products/keep.png", []byte("k"), nil))

	store := NewBlobImageStorage(bucket, "https://cdn.example.com/", newDiscardLogger())

	err := store.DeleteImages(ctx, []string{
		"products/a.png",
		"https://cdn.example.com/products/b.png",
		"products/missing.png",
		"",
	})
	require.NoError(t, err)

	for key, want := range map[string]bool{
		"products/a.png":    false,
		"products/b.png":    false,
		"products/keep.png": true,
	} {
		exists, err := bucket.Exists(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, exists, key)
	}
}

func TestBlobImageStorage_ClosedBucketReportsFailures(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.Close())

	err := NewBlobImageStorage(bucket, "", newDiscardLogger()).
		DeleteImages(context.Background(), []string{"a.png", "b.png"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete a.png")
	assert.Contains(t, err.Error(), "delete b.png")
}
