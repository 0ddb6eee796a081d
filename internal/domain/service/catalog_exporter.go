package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// CatalogExporter renders products as a spreadsheet.
type CatalogExporter interface {
	ContentType() string
	ExportProducts(w io.Writer, products []*entity.Product) error
}
