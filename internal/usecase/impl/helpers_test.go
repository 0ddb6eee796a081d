package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultProductLimit:  12,
			DefaultOrderLimit:    10,
			DefaultCategoryLimit: 50,
			MaxLimit:             100,
		},
	}
}
