package catalog

import (
	"dressify/models"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(m map[string]string) Params {
	return func(key string) string { return m[key] }
}

func TestParseProductQueryDefaults(t *testing.T) {
	q, err := ParseProductQuery(params(nil))
	require.NoError(t, err)

	assert.Equal(t, models.ProductActive, q.Filter.Status)
	assert.Empty(t, q.Filter.Category)
	assert.Nil(t, q.Filter.MinPrice)
	assert.Nil(t, q.Filter.Featured)
	assert.Equal(t, Sort{Field: "createdAt", Desc: true}, q.Sort)
	assert.Equal(t, Page{Number: 1, Limit: DefaultProductLimit}, q.Page)
}

func TestParseProductQuery(t *testing.T) {
	q, err := ParseProductQuery(params(map[string]string{
		"category":  "Shoes",
		"search":    " boot ",
		"minPrice":  "10",
		"maxPrice":  "99.5",
		"featured":  "true",
		"sortBy":    "price",
		"sortOrder": "asc",
		"page":      "2",
		"limit":     "2",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Shoes", q.Filter.Category)
	assert.Equal(t, "boot", q.Filter.Search)
	require.NotNil(t, q.Filter.MinPrice)
	assert.Equal(t, 10.0, *q.Filter.MinPrice)
	require.NotNil(t, q.Filter.MaxPrice)
	assert.Equal(t, 99.5, *q.Filter.MaxPrice)
	require.NotNil(t, q.Filter.Featured)
	assert.True(t, *q.Filter.Featured)
	assert.Equal(t, Sort{Field: "price"}, q.Sort)
	assert.Equal(t, Page{Number: 2, Limit: 2}, q.Page)
	assert.Equal(t, 2, q.Page.Offset())
}

func TestParseProductQueryAllCategories(t *testing.T) {
	for _, v := range []string{"all", "ALL", " All "} {
		q, err := ParseProductQuery(params(map[string]string{"category": v}))
		require.NoError(t, err)
		assert.Empty(t, q.Filter.Category, v)
	}
}

func TestParseProductQueryClampsLimit(t *testing.T) {
	q, err := ParseProductQuery(params(map[string]string{"limit": "500"}))
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, q.Page.Limit)
}

func TestParseProductQueryRejects(t *testing.T) {
	tests := []struct {
		name  string
		query map[string]string
		field string
	}{
		{name: "page zero", query: map[string]string{"page": "0"}, field: "page"},
		{name: "page text", query: map[string]string{"page": "two"}, field: "page"},
		{name: "negative limit", query: map[string]string{"limit": "-1"}, field: "limit"},
		{name: "bad min price", query: map[string]string{"minPrice": "cheap"}, field: "minPrice"},
		{name: "negative max price", query: map[string]string{"maxPrice": "-3"}, field: "maxPrice"},
		{name: "NaN min price", query: map[string]string{"minPrice": "NaN"}, field: "minPrice"},
		{name: "infinite max price", query: map[string]string{"maxPrice": "Inf"}, field: "maxPrice"},
		{name: "infinity min price", query: map[string]string{"minPrice": "-Infinity"}, field: "minPrice"},
		{name: "page past int range", query: map[string]string{"page": "1000000000000000000"}, field: "page"},
		{name: "bad featured", query: map[string]string{"featured": "maybe"}, field: "featured"},
		{name: "unknown sort", query: map[string]string{"sortBy": "password"}, field: "sortBy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProductQuery(params(tt.query))
			require.Error(t, err)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.InvalidParameter, appErr.Kind)
			require.Len(t, appErr.Fields, 1)
			assert.Equal(t, tt.field, appErr.Fields[0].Field)
		})
	}
}

func TestParseProductQueryLargestPage(t *testing.T) {
	q, err := ParseProductQuery(params(map[string]string{"page": strconv.Itoa(MaxPage), "limit": "100"}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, q.Page.Offset(), 0)
}

func TestParseProductQueryFeaturedFalse(t *testing.T) {
	q, err := ParseProductQuery(params(map[string]string{"featured": "false"}))
	require.NoError(t, err)
	require.NotNil(t, q.Filter.Featured)
	assert.False(t, *q.Filter.Featured)
}

func TestParseOwnerQuery(t *testing.T) {
	q, err := ParseOwnerQuery("u1", params(map[string]string{"status": "all"}))
	require.NoError(t, err)
	assert.Equal(t, OwnerQuery{Author: "u1", Page: Page{Number: 1, Limit: DefaultPostLimit}}, q)

	q, err = ParseOwnerQuery("u1", params(map[string]string{"status": "draft"}))
	require.NoError(t, err)
	assert.Equal(t, models.ProductDraft, q.Status)
}

func TestParsePostQuery(t *testing.T) {
	q, err := ParsePostQuery(params(nil), models.PostPublished)
	require.NoError(t, err)
	assert.Equal(t, models.PostPublished, q.Filter.Status)
	assert.Equal(t, DefaultPostLimit, q.Page.Limit)

	q, err = ParsePostQuery(params(map[string]string{"status": "all"}), models.PostPublished)
	require.NoError(t, err)
	assert.Empty(t, q.Filter.Status)

	_, err = ParsePostQuery(params(map[string]string{"sortBy": "price"}), models.PostPublished)
	assert.Error(t, err)
}
