// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// listLimits are the per-entity page sizes of the query façade.
type listLimits struct {
	products   int
	orders     int
	categories int
	max        int
}

func newListLimits(cfg *config.Config) listLimits {
	limits := listLimits{products: 12, orders: 10, categories: 50, max: 100}
	if cfg == nil || cfg.Catalog == nil {
		return limits
	}

	if cfg.Catalog.DefaultProductLimit > 0 {
		limits.products = cfg.Catalog.DefaultProductLimit
	}
	if cfg.Catalog.DefaultOrderLimit > 0 {
		limits.orders = cfg.Catalog.DefaultOrderLimit
	}
	if cfg.Catalog.DefaultCategoryLimit > 0 {
		limits.categories = cfg.Catalog.DefaultCategoryLimit
	}
	if cfg.Catalog.MaxLimit > 0 {
		limits.max = cfg.Catalog.MaxLimit
	}

	return limits
}

// asUpstream keeps classified errors and turns anything else into UPSTREAM_FAILURE.
func asUpstream(err error, details string) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// uniqueIDs drops nil and repeated ids, keeping first-seen order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// optionalString trims s and treats an empty result as absent.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
