package catalog

import (
	"dressify/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func product(id, name string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Category: "Shoes",
		Price:    price,
		Status:   models.ProductActive,
		IsActive: true,
	}
}

func TestProductFilterMatch(t *testing.T) {
	p := product("a", "Leather Boot", 80)
	p.Description = "Hand stitched"
	p.Tags = []string{"winter", "brown"}

	minPrice, maxPrice, featured, notFeatured := 50.0, 100.0, true, false
	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{name: "status only", filter: ProductFilter{Status: "active"}, want: true},
		{name: "other status", filter: ProductFilter{Status: "draft"}, want: false},
		{name: "category substring", filter: ProductFilter{Status: "active", Category: "sho"}, want: true},
		{name: "category miss", filter: ProductFilter{Status: "active", Category: "Bags"}, want: false},
		{name: "search name", filter: ProductFilter{Status: "active", Search: "boot"}, want: true},
		{name: "search description", filter: ProductFilter{Status: "active", Search: "STITCHED"}, want: true},
		{name: "search tag", filter: ProductFilter{Status: "active", Search: "wint"}, want: true},
		{name: "search miss", filter: ProductFilter{Status: "active", Search: "sandal"}, want: false},
		{name: "price range", filter: ProductFilter{Status: "active", MinPrice: &minPrice, MaxPrice: &maxPrice}, want: true},
		{name: "above max", filter: ProductFilter{Status: "active", MaxPrice: &minPrice}, want: false},
		{name: "featured", filter: ProductFilter{Status: "active", Featured: &featured}, want: false},
		{name: "not featured", filter: ProductFilter{Status: "active", Featured: &notFeatured}, want: true},
		{name: "author", filter: ProductFilter{Status: "active", Author: "someone"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(&p))
		})
	}
}

func TestProductFilterMatchFeaturedFalseExcludesFeatured(t *testing.T) {
	p := product("a", "Boot", 10)
	p.Featured = true
	notFeatured := false

	assert.False(t, ProductFilter{Status: "active", Featured: &notFeatured}.Match(&p))
	assert.True(t, ProductFilter{Status: "active"}.Match(&p))
}

func TestProductFilterMatchInactive(t *testing.T) {
	p := product("a", "Boot", 10)
	p.IsActive = false
	assert.False(t, ProductFilter{Status: "active"}.Match(&p))
}

func TestSortProductsTieBreak(t *testing.T) {
	products := []models.Product{
		product("c", "C", 10),
		product("a", "A", 10),
		product("b", "B", 5),
	}

	Sort{Field: "price"}.SortProducts(products)
	assert.Equal(t, []string{"b", "a", "c"}, ids(products))

	Sort{Field: "price", Desc: true}.SortProducts(products)
	assert.Equal(t, []string{"c", "a", "b"}, ids(products))
}

func TestSortProductsCreatedAt(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{product("a", "A", 1), product("b", "B", 1), product("c", "C", 1)}
	products[0].CreatedAt = base
	products[1].CreatedAt = base.Add(time.Hour)
	products[2].CreatedAt = base.Add(-time.Hour)

	Sort{Field: "createdAt", Desc: true}.SortProducts(products)
	assert.Equal(t, []string{"b", "a", "c"}, ids(products))
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Window(items, Page{Number: 1, Limit: 2}))
	assert.Equal(t, []int{5}, Window(items, Page{Number: 3, Limit: 2}))
	assert.Empty(t, Window(items, Page{Number: 4, Limit: 2}))
	assert.Empty(t, Window(items, Page{Number: -1, Limit: 2}))
	assert.NotNil(t, Window(items, Page{Number: 9, Limit: 2}))
}

func TestPostFilterMatch(t *testing.T) {
	p := models.Post{Title: "Linen season", Content: "Breathable fabrics", Status: models.PostDraft, Category: "Fashion"}

	assert.True(t, PostFilter{}.Match(&p))
	assert.False(t, PostFilter{Status: models.PostPublished}.Match(&p))
	assert.True(t, PostFilter{Search: "fabric"}.Match(&p))
	assert.False(t, PostFilter{Category: "Style"}.Match(&p))
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i := range products {
		out[i] = products[i].ID
	}
	return out
}
