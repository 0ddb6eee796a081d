package export

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXExporter_ExportProducts(t *testing.T) {
	categoryID := uuid.New()
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	products := []*entity.Product{
		{
			ID:            uuid.New(),
			Name:          "Canvas Tote",
			Slug:          "canvas-tote",
			Price:         decimal.RequireFromString("24.5"),
			StockQuantity: 7,
			CategoryID:    &categoryID,
			IsActive:      true,
			Images:        []string{"products/tote-1.png", "products/tote-2.png"},
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		{ID: uuid.New(), Name: "Mug", Slug: "mug", Price: decimal.NewFromInt(9)},
	}

	var buf bytes.Buffer
	exporter := NewXLSXExporter()
	require.NoError(t, exporter.ExportProducts(&buf, products))
	assert.Equal(t, xlsxMIMEType, exporter.ContentType())

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	sheet, ok := file.Sheet[sheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "Name", sheet.Rows[0].Cells[1].String())

	first := sheet.Rows[1].Cells
	assert.Equal(t, "Canvas Tote", first[1].String())
	assert.Equal(t, "24.50", first[3].String())
	assert.Equal(t, categoryID.String(), first[5].String())
	assert.Equal(t, "products/tote-1.png,products/tote-2.png", first[10].String())
	assert.Equal(t, "2026-03-01 09:30:00", first[11].String())
	assert.Equal(t, "Mug", sheet.Rows[2].Cells[1].String())

}
