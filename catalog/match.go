package catalog

import (
	"cmp"
	"dressify/models"
	"slices"
	"strings"
)

// Match reports whether p satisfies the filter. It mirrors SQL.
func (f ProductFilter) Match(p *models.Product) bool {
	if p.Status != f.Status || !p.IsActive {
		return false
	}
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Search != "" && !productMentions(p, f.Search) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Author != "" && p.Author != f.Author {
		return false
	}
	return true
}

func productMentions(p *models.Product, term string) bool {
	if containsFold(p.Name, term) || containsFold(p.Description, term) || containsFold(p.Category, term) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func (q OwnerQuery) Match(p *models.Product) bool {
	return p.Author == q.Author && (q.Status == "" || p.Status == q.Status)
}

// SortProducts orders products in place the way ProductOrderBy does.
func (s Sort) SortProducts(products []models.Product) {
	slices.SortStableFunc(products, func(a, b models.Product) int {
		c := compareProducts(s.Field, &a, &b)
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if s.Desc {
			return -c
		}
		return c
	})
}

func compareProducts(field string, a, b *models.Product) int {
	switch field {
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "price":
		return cmp.Compare(a.Price, b.Price)
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "likes":
		return cmp.Compare(a.Likes, b.Likes)
	case "views":
		return cmp.Compare(a.Views, b.Views)
	case "sales":
		return cmp.Compare(a.Sales, b.Sales)
	case "stock":
		return cmp.Compare(a.Stock, b.Stock)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// Window returns the slice of items that falls inside the page.
func Window[T any](items []T, p Page) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
