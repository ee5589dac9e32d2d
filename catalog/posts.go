package catalog

import (
	"cmp"
	"dressify/models"
	"slices"
	"strings"
)

// PostFilter restricts a blog listing. Empty fields disable their clause.
type PostFilter struct {
	Status   string
	Category string
	Search   string
	Author   string
}

type PostQuery struct {
	Filter PostFilter
	Sort   Sort
	Page   Page
}

// ParsePostQuery reads a post listing request. defaultStatus applies when no
// status is given; "all" lifts the status filter.
func ParsePostQuery(get Params, defaultStatus string) (PostQuery, error) {
	page, err := parsePage(get, DefaultPostLimit)
	if err != nil {
		return PostQuery{}, err
	}
	sort, err := parseSort(get, postSortColumns)
	if err != nil {
		return PostQuery{}, err
	}

	q := PostQuery{
		Filter: PostFilter{
			Status: strings.TrimSpace(get("status")),
			Search: strings.TrimSpace(get("search")),
			Author: strings.TrimSpace(get("author")),
		},
		Sort: sort,
		Page: page,
	}
	switch {
	case q.Filter.Status == "":
		q.Filter.Status = defaultStatus
	case strings.EqualFold(q.Filter.Status, "all"):
		q.Filter.Status = ""
	}
	if category := strings.TrimSpace(get("category")); !strings.EqualFold(category, AllCategories) {
		q.Filter.Category = category
	}
	return q, nil
}

func (f PostFilter) SQL() (string, []interface{}) {
	w := &where{}
	if f.Status != "" {
		w.add("p.status = " + w.arg(f.Status))
	}
	if f.Category != "" {
		w.add("p.category = " + w.arg(f.Category))
	}
	if f.Search != "" {
		n := w.arg(likePattern(f.Search))
		w.add("(p.title ILIKE " + n + " OR p.content ILIKE " + n + ")")
	}
	if f.Author != "" {
		w.add("p.author_id = " + w.arg(f.Author))
	}
	return w.String(), w.args
}

func (f PostFilter) Match(p *models.Post) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !containsFold(p.Title, f.Search) && !containsFold(p.Content, f.Search) {
		return false
	}
	if f.Author != "" && p.Author != f.Author {
		return false
	}
	return true
}

func (s Sort) SortPosts(posts []models.Post) {
	slices.SortStableFunc(posts, func(a, b models.Post) int {
		var c int
		switch s.Field {
		case "updatedAt":
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		case "title":
			c = strings.Compare(a.Title, b.Title)
		case "views":
			c = cmp.Compare(a.Views, b.Views)
		case "likes":
			c = cmp.Compare(a.Likes, b.Likes)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if s.Desc {
			return -c
		}
		return c
	})
}
