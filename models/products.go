package models

import (
	"strings"
	"time"
)

const DefaultProductImage = "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=400&fit=crop"

// Product statuses.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
	ProductDraft    = "draft"
)

// Stock status labels, derived from Product.Stock.
const (
	OutOfStock = "out_of_stock"
	LowStock   = "low_stock"
	InStock    = "in_stock"
)

const lowStockThreshold = 5

// ProductCategories is the closed set of categories accepted on write.
var ProductCategories = []string{
	"Clothing", "Shoes", "Accessories", "Bags", "Jewelry", "Electronics",
	"Home", "Sports", "Beauty", "Books", "Other",
}

var productStatuses = []string{ProductActive, ProductInactive, ProductDraft}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	Featured    bool      `json:"featured"`
	Tags        []string  `json:"tags"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	Views       int       `json:"views"`
	Sales       int       `json:"sales"`
	Author      string    `json:"author"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsAvailable reports whether the product can be bought right now.
func (p *Product) IsAvailable() bool {
	return p.Stock > 0 && p.Status == ProductActive && p.IsActive
}

func (p *Product) StockStatus() string {
	switch {
	case p.Stock <= 0:
		return OutOfStock
	case p.Stock <= lowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// LikedByUser reports whether userID is in the likedBy set.
func (p *Product) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds or removes userID from likedBy and moves the likes counter
// with it. The counter never drops below zero.
func (p *Product) ToggleLike(userID string) (liked bool) {
	if p.LikedByUser(userID) {
		kept := p.LikedBy[:0]
		for _, id := range p.LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		p.LikedBy = kept
		if p.Likes > 0 {
			p.Likes--
		}
		return false
	}
	p.LikedBy = append(p.LikedBy, userID)
	p.Likes++
	return true
}

// ProductView is a product as returned by the read endpoints: the stored
// record plus favorite metadata and derived availability fields. Likes and
// FavoriteCount are independent counters.
type ProductView struct {
	Product
	FavoriteCount int64  `json:"favoriteCount"`
	IsFavorite    bool   `json:"isFavorite"`
	IsAvailable   bool   `json:"isAvailable"`
	StockStatus   string `json:"stockStatus"`
}

// ProductInput is the create/update payload. Nil fields are left untouched on
// update.
type ProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	Image       *string  `json:"image"`
	Images      []string `json:"images"`
	Status      *string  `json:"status"`
	Featured    *bool    `json:"featured"`
	Tags        TagList  `json:"tags"`
}

// Validate checks the payload. With partial set only present fields are
// checked, otherwise name, description, price, category and stock are required.
func (in *ProductInput) Validate(partial bool) []FieldError {
	var errs []FieldError

	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}

	if in.Name == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "name", Message: "Product name is required"})
		}
	} else if n := len([]rune(*in.Name)); n < 2 || n > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "Product name must be between 2 and 100 characters"})
	}

	if in.Description == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "description", Message: "Product description is required"})
		}
	} else if n := len([]rune(*in.Description)); n < 10 || n > 1000 {
		errs = append(errs, FieldError{Field: "description", Message: "Description must be between 10 and 1000 characters"})
	}

	if in.Price == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "price", Message: "Product price is required"})
		}
	} else if *in.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "Price must be a positive number"})
	}

	if in.Stock == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "stock", Message: "Stock quantity is required"})
		}
	} else if *in.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "Stock must be a non-negative integer"})
	}

	if in.Category == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "category", Message: "Product category is required"})
		}
	} else if !contains(ProductCategories, *in.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "Invalid category"})
	}

	if in.Status != nil && !contains(productStatuses, *in.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Status must be one of active, inactive, draft"})
	}

	return errs
}

// NewProduct builds a product from a validated create payload.
func (in *ProductInput) NewProduct(authorID string) Product {
	p := Product{
		Image:    DefaultProductImage,
		Images:   []string{},
		Status:   ProductActive,
		Tags:     []string{},
		LikedBy:  []string{},
		Author:   authorID,
		IsActive: true,
	}
	in.Apply(&p)
	return p
}

// Apply copies the present fields onto p.
func (in *ProductInput) Apply(p *Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Image != nil && *in.Image != "" {
		p.Image = *in.Image
	}
	if in.Images != nil {
		p.Images = in.Images
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Tags != nil {
		p.Tags = []string(in.Tags)
	}
}

// DashboardStats summarises a seller's own products.
type DashboardStats struct {
	TotalProducts  int64   `json:"totalProducts"`
	ActiveProducts int64   `json:"activeProducts"`
	TotalSales     int64   `json:"totalSales"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
