package fieldmap

import (
	"encoding/json"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()

	var p map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	return p
}

func TestProductFields_MapsEveryPublicName(t *testing.T) {
	expected := map[string]string{
		"name":          "name",
		"slug":          "slug",
		"description":   "description",
		"price":         "price",
		"stockQuantity": "stock_quantity",
		"categoryId":    "category_id",
		"isActive":      "is_active",
		"images":        "images",
		"isTrending":    "is_trending",
		"isFeatured":    "is_featured",
		"isNewArrival":  "is_new_arrival",
	}

	assert.Len(t, ProductFields.Columns(), len(expected))
	for public, column := range expected {
		got, ok := ProductFields.Column(public)
		assert.True(t, ok, public)
		assert.Equal(t, column, got, public)
	}
}

func TestCategoryFields_MapsEveryPublicName(t *testing.T) {
	got, ok := CategoryFields.Column("imageUrl")
	assert.True(t, ok)
	assert.Equal(t, "image_url", got)
	assert.Equal(t, []string{"description", "imageUrl", "name", "slug"}, CategoryFields.Columns())
}

func TestTranslate_UpdateSemantics(t *testing.T) {
	categoryID := uuid.New()
	out, err := ProductFields.Translate(payload(t, `{
		"stockQuantity": 7,
		"price": "12.50",
		"description": null,
		"categoryId": "`+categoryID.String()+`",
		"images": [" a.png ", "", "b.png"],
		"isTrending": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, 7, out["stock_quantity"])
	assert.True(t, decimal.RequireFromString("12.5").Equal(out["price"].(decimal.Decimal)))
	assert.Contains(t, out, "description")
	assert.Nil(t, out["description"])
	assert.Equal(t, categoryID, out["category_id"])
	assert.Equal(t, []string{"a.png", "b.png"}, out["images"])
	assert.Equal(t, true, out["is_trending"])
	assert.NotContains(t, out, "name")
	assert.NotContains(t, out, "slug")
}

func TestTranslate_OrderIndependent(t *testing.T) {
	a, err := ProductFields.Translate(payload(t, `{"name":"Mug","isActive":false,"stockQuantity":3}`))
	require.NoError(t, err)
	b, err := ProductFields.Translate(payload(t, `{"stockQuantity":3,"isActive":false,"name":"Mug"}`))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{"unknown key", `{"stock_quantity": 3}`, `unknown product field "stock_quantity"`},
		{"null on non-nullable", `{"price": null}`, `product field "price" cannot be null`},
		{"negative price", `{"price": -1}`, `product field "price": must not be negative`},
		{"bad slug", `{"slug": "Not A Slug"}`, `product field "slug": must be a lowercase slug`},
		{"bad uuid", `{"categoryId": "nope"}`, `product field "categoryId": must be a UUID`},
		{"negative stock", `{"stockQuantity": -2}`, `product field "stockQuantity": must not be negative`},
		{"empty name", `{"name": "  "}`, `product field "name": must not be empty`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProductFields.Translate(payload(t, tt.body))
			require.Error(t, err)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestTranslateCreate_RequiresFields(t *testing.T) {
	_, err := ProductFields.TranslateCreate(payload(t, `{"name":"Mug","price":4}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), `"slug" is required`)

	out, err := ProductFields.TranslateCreate(payload(t, `{"name":"Mug","slug":"mug","price":4}`))
	require.NoError(t, err)
	assert.Equal(t, "mug", out["slug"])
}

func TestTranslate_EmptyOptionalIsAbsent(t *testing.T) {
	out, err := CategoryFields.TranslateCreate(payload(t, `{"name":"Shoes","description":"","imageUrl":"   "}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Shoes"}, out)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "running-shoes", Slugify("  Running Shoes! "))
	assert.Equal(t, "a-b-c", Slugify("A--B__C"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("summer-sale-2024"))
	assert.False(t, IsSlug("Summer-Sale"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug(""))
}
