// Package export renders catalog data as downloadable spreadsheets.
package export

import (
	"io"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/tealeg/xlsx"
)

const (
	sheetName      = "Products"
	timeLayout     = "2006-01-02 15:04:05"
	xlsxMIMEType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	imageSeparator = ","
)

var productHeaders = []string{
	"ID", "Name", "Slug", "Price", "Stock", "Category ID", "Active",
	"Trending", "Featured", "New Arrival", "Images", "Created At", "Updated At",
}

type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() service.CatalogExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return xlsxMIMEType
}

func (xlsxExporter) ExportProducts(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	header := sheet.AddRow()
	for _, h := range productHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetInt(p.StockQuantity)

		category := ""
		if p.CategoryID != nil {
			category = p.CategoryID.String()
		}
		row.AddCell().SetString(category)

		row.AddCell().SetBool(p.IsActive)
		row.AddCell().SetBool(p.IsTrending)
		row.AddCell().SetBool(p.IsFeatured)
		row.AddCell().SetBool(p.IsNewArrival)
		row.AddCell().SetString(strings.Join(p.Images, imageSeparator))
		row.AddCell().SetString(p.CreatedAt.UTC().Format(timeLayout))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format(timeLayout))
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write spreadsheet")
	}

	return nil
}
