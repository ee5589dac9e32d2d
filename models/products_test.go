package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  string
	}{
		{stock: 0, want: OutOfStock},
		{stock: 1, want: LowStock},
		{stock: 5, want: LowStock},
		{stock: 6, want: InStock},
	}
	for _, tt := range tests {
		p := Product{Stock: tt.stock}
		assert.Equal(t, tt.want, p.StockStatus(), "stock %d", tt.stock)
	}
}

func TestIsAvailable(t *testing.T) {
	p := Product{Stock: 1, Status: ProductActive, IsActive: true}
	assert.True(t, p.IsAvailable())

	p.Status = ProductDraft
	assert.False(t, p.IsAvailable())

	p = Product{Stock: 0, Status: ProductActive, IsActive: true}
	assert.False(t, p.IsAvailable())
}

func TestToggleLike(t *testing.T) {
	p := Product{}

	assert.True(t, p.ToggleLike("u1"))
	assert.Equal(t, 1, p.Likes)
	assert.True(t, p.LikedByUser("u1"))

	assert.True(t, p.ToggleLike("u2"))
	assert.Equal(t, 2, p.Likes)

	assert.False(t, p.ToggleLike("u1"))
	assert.Equal(t, 1, p.Likes)
	assert.Equal(t, []string{"u2"}, p.LikedBy)
}

func TestToggleLikeNeverNegative(t *testing.T) {
	p := Product{LikedBy: []string{"u1"}}

	p.ToggleLike("u1")
	assert.Zero(t, p.Likes)
	assert.Empty(t, p.LikedBy)
}

func ptr[T any](v T) *T { return &v }

func TestProductInputValidateCreate(t *testing.T) {
	in := ProductInput{}
	errs := in.Validate(false)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"name", "description", "price", "stock", "category"}, fields)
}

func TestProductInputValidate(t *testing.T) {
	valid := func() ProductInput {
		return ProductInput{
			Name:        ptr("Test Item"),
			Description: ptr("A sturdy everyday item"),
			Price:       ptr(10.0),
			Category:    ptr("Shoes"),
			Stock:       ptr(3),
		}
	}

	tests := []struct {
		name   string
		modify func(*ProductInput)
		field  string
	}{
		{name: "short name", modify: func(in *ProductInput) { in.Name = ptr(" a ") }, field: "name"},
		{name: "short description", modify: func(in *ProductInput) { in.Description = ptr("too short") }, field: "description"},
		{name: "negative price", modify: func(in *ProductInput) { in.Price = ptr(-1.0) }, field: "price"},
		{name: "negative stock", modify: func(in *ProductInput) { in.Stock = ptr(-2) }, field: "stock"},
		{name: "unknown category", modify: func(in *ProductInput) { in.Category = ptr("Spaceships") }, field: "category"},
		{name: "unknown status", modify: func(in *ProductInput) { in.Status = ptr("sold") }, field: "status"},
	}

	in := valid()
	assert.Empty(t, in.Validate(false))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.modify(&in)
			errs := in.Validate(false)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestProductInputPartial(t *testing.T) {
	in := ProductInput{Price: ptr(25.0)}
	assert.Empty(t, in.Validate(true))

	p := Product{Name: "Boot", Price: 10, Likes: 4}
	in.Apply(&p)
	assert.Equal(t, 25.0, p.Price)
	assert.Equal(t, "Boot", p.Name)
	assert.Equal(t, 4, p.Likes)
}

func TestNewProductDefaults(t *testing.T) {
	in := ProductInput{Name: ptr("Boot"), Tags: TagList{"a"}}
	p := in.NewProduct("u1")

	assert.Equal(t, "u1", p.Author)
	assert.Equal(t, ProductActive, p.Status)
	assert.Equal(t, DefaultProductImage, p.Image)
	assert.True(t, p.IsActive)
	assert.Equal(t, []string{"a"}, p.Tags)
}

func TestTagList(t *testing.T) {
	var in ProductInput

	require.NoError(t, json.Unmarshal([]byte(`{"tags":"summer, linen ,,casual"}`), &in))
	assert.Equal(t, TagList{"summer", "linen", "casual"}, in.Tags)

	require.NoError(t, json.Unmarshal([]byte(`{"tags":["a"," b "]}`), &in))
	assert.Equal(t, TagList{"a", "b"}, in.Tags)

	in = ProductInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"tags":null}`), &in))
	assert.Nil(t, in.Tags)

	assert.Error(t, json.Unmarshal([]byte(`{"tags":12}`), &in))
}

func TestProductViewJSON(t *testing.T) {
	v := ProductView{
		Product:       Product{ID: "p1", Name: "Test Item"},
		FavoriteCount: 1,
		IsFavorite:    true,
		StockStatus:   OutOfStock,
	}
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "p1", out["id"])
	assert.Equal(t, "Test Item", out["name"])
	assert.Equal(t, 1.0, out["favoriteCount"])
	assert.Equal(t, true, out["isFavorite"])
	assert.Equal(t, OutOfStock, out["stockStatus"])
}
