package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
		wantOrder SortOrder
	}{
		{"defaults", PageRequest{}, 1, 12, SortDesc},
		{"negative page", PageRequest{Page: -3, Limit: 5}, 1, 5, SortDesc},
		{"limit above max", PageRequest{Page: 2, Limit: 1000}, 2, 100, SortDesc},
		{"keeps asc", PageRequest{Page: 1, Limit: 10, SortOrder: SortAsc}, 1, 10, SortAsc},
		{"garbage order", PageRequest{SortOrder: "sideways"}, 1, 12, SortDesc},
		{"page capped", PageRequest{Page: math.MaxInt, Limit: 10}, math.MaxInt / 10, 10, SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize(12, 100)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOrder, got.SortOrder)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, PageRequest{}.Offset())
}

func TestPageRequest_Offset_HugePage(t *testing.T) {
	normalized := PageRequest{Page: math.MaxInt, Limit: 10}.Normalize(12, 100)
	offset := normalized.Offset()
	assert.Positive(t, offset)
	assert.Equal(t, (math.MaxInt/10-1)*10, offset)

	// Un-normalized requests saturate instead of wrapping.
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt, Limit: 10}.Offset())
	assert.Equal(t, math.MaxInt, PageRequest{Page: math.MaxInt / 2, Limit: 100}.Offset())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 12, 9},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.limit), "count=%d limit=%d", tt.count, tt.limit)
	}
}

func TestTotalPages_InvariantAcrossLimits(t *testing.T) {
	for count := int64(0); count <= 250; count += 7 {
		for limit := 1; limit <= 100; limit += 9 {
			pages := TotalPages(count, limit)
			assert.GreaterOrEqual(t, int64(pages*limit), count)
			if pages > 0 {
				assert.Less(t, int64((pages-1)*limit), count)
			}
		}
	}
}

func TestWhitelist_Resolve(t *testing.T) {
	w := NewWhitelist("createdAt", map[string]string{
		"createdAt": "created_at",
		"price":     "price",
	})

	assert.Equal(t, Sort{Column: "price", Desc: false}, w.Resolve("price", SortAsc))
	assert.Equal(t, Sort{Column: "created_at", Desc: true}, w.Resolve("price; DROP TABLE products", SortDesc))
	assert.Equal(t, Sort{Column: "created_at", Desc: true}, w.Resolve("", SortDesc))
}

func TestNewPage(t *testing.T) {
	req := PageRequest{Page: 2, Limit: 3}
	page := NewPage([]string{"a", "b"}, 5, req)

	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(5), page.Count)
	assert.LessOrEqual(t, len(page.Items), req.Limit)

	empty := EmptyPage[string](PageRequest{Page: 1, Limit: 12})
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, EscapeLike("50% off_now"))
}
