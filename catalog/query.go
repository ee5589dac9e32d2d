// Package catalog turns listing request parameters into a deterministic
// filter, sort and page specification, renders it for PostgreSQL or evaluates
// it in memory, and enriches result pages with favorite metadata.
package catalog

import (
	"dressify/models"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage         = 1
	DefaultProductLimit = 12
	DefaultPostLimit    = 10
	MaxLimit            = 100

	// MaxPage keeps (page-1)*limit within int for any accepted limit.
	MaxPage = math.MaxInt / MaxLimit

	// AllCategories disables the category filter.
	AllCategories = "all"
)

// Params reads one raw query parameter; a missing parameter is "".
type Params func(key string) string

// Page is a 1-based page window.
type Page struct {
	Number int
	Limit  int
}

// Offset is the number of matches skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Sort orders by a single named field, e.g. "createdAt" or "price".
type Sort struct {
	Field string
	Desc  bool
}

// ProductFilter restricts a product listing. Zero values disable a clause,
// except Status, which is always applied together with isActive = true.
type ProductFilter struct {
	Status   string
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	Author   string
}

type ProductQuery struct {
	Filter ProductFilter
	Sort   Sort
	Page   Page
}

// ParseProductQuery builds a product query from request parameters. Malformed
// numbers and booleans and unknown sort fields are reported as
// InvalidParameter errors; unknown categories are accepted and simply match
// nothing.
func ParseProductQuery(get Params) (ProductQuery, error) {
	page, err := parsePage(get, DefaultProductLimit)
	if err != nil {
		return ProductQuery{}, err
	}

	q := ProductQuery{
		Filter: ProductFilter{
			Status: strings.TrimSpace(get("status")),
			Search: strings.TrimSpace(get("search")),
			Author: strings.TrimSpace(get("author")),
		},
		Page: page,
	}
	if q.Filter.Status == "" {
		q.Filter.Status = models.ProductActive
	}

	if category := strings.TrimSpace(get("category")); !strings.EqualFold(category, AllCategories) {
		q.Filter.Category = category
	}

	if q.Filter.MinPrice, err = parsePrice(get, "minPrice"); err != nil {
		return ProductQuery{}, err
	}
	if q.Filter.MaxPrice, err = parsePrice(get, "maxPrice"); err != nil {
		return ProductQuery{}, err
	}

	if v := strings.TrimSpace(get("featured")); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return ProductQuery{}, models.InvalidParam("featured", "featured must be true or false")
		}
		q.Filter.Featured = &featured
	}

	if q.Sort, err = parseSort(get, productSortColumns); err != nil {
		return ProductQuery{}, err
	}
	return q, nil
}

func parsePage(get Params, defaultLimit int) (Page, error) {
	page := Page{Number: DefaultPage, Limit: defaultLimit}

	if v := strings.TrimSpace(get("page")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Page{}, models.InvalidParam("page", "page must be a positive integer")
		}
		if n > MaxPage {
			return Page{}, models.InvalidParam("page", "page must not exceed %d", MaxPage)
		}
		page.Number = n
	}
	if v := strings.TrimSpace(get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Page{}, models.InvalidParam("limit", "limit must be a positive integer")
		}
		if n > MaxLimit {
			n = MaxLimit
		}
		page.Limit = n
	}
	return page, nil
}

func parsePrice(get Params, key string) (*float64, error) {
	v := strings.TrimSpace(get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, models.InvalidParam(key, "%s must be a non-negative number", key)
	}
	return &f, nil
}

func parseSort(get Params, columns map[string]string) (Sort, error) {
	s := Sort{Field: "createdAt", Desc: true}
	if v := strings.TrimSpace(get("sortBy")); v != "" {
		if _, ok := columns[v]; !ok {
			return Sort{}, models.InvalidParam("sortBy", "cannot sort by %q", v)
		}
		s.Field = v
	}
	if v := strings.TrimSpace(get("sortOrder")); v != "" {
		s.Desc = strings.EqualFold(v, "desc")
	}
	return s, nil
}

// OwnerQuery lists one author's products regardless of isActive. An empty
// Status or "all" matches every status.
type OwnerQuery struct {
	Author string
	Status string
	Page   Page
}

func ParseOwnerQuery(author string, get Params) (OwnerQuery, error) {
	page, err := parsePage(get, DefaultPostLimit)
	if err != nil {
		return OwnerQuery{}, err
	}
	q := OwnerQuery{Author: author, Page: page}
	if status := strings.TrimSpace(get("status")); !strings.EqualFold(status, "all") {
		q.Status = status
	}
	return q, nil
}

// ParsePageOnly reads page and limit alone.
func ParsePageOnly(get Params, defaultLimit int) (Page, error) {
	return parsePage(get, defaultLimit)
}
