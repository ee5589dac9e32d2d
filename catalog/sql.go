package catalog

import (
	"strconv"
	"strings"
)

// Text columns sort with the "C" collation, the byte order strings.Compare
// uses in memory.
var productSortColumns = map[string]string{
	"createdAt": "p.created_at",
	"updatedAt": "p.updated_at",
	"price":     "p.price",
	"name":      `p.name COLLATE "C"`,
	"likes":     "p.likes",
	"views":     "p.views",
	"sales":     "p.sales",
	"stock":     "p.stock",
}

var postSortColumns = map[string]string{
	"createdAt": "p.created_at",
	"updatedAt": "p.updated_at",
	"title":     `p.title COLLATE "C"`,
	"views":     "p.views",
	"likes":     "p.likes",
}

// where collects AND-ed SQL conditions with positional arguments.
type where struct {
	conds []string
	args  []interface{}
}

func (w *where) arg(v interface{}) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *where) add(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(w.conds, " AND ")
}

// SQL renders the filter as a WHERE body over table alias p, with $n
// placeholders numbered from 1.
func (f ProductFilter) SQL() (string, []interface{}) {
	w := &where{}

	w.add("p.status = " + w.arg(f.Status))
	w.add("p.is_active = TRUE")

	if f.Category != "" {
		w.add("p.category ILIKE " + w.arg(likePattern(f.Category)))
	}
	if f.Search != "" {
		n := w.arg(likePattern(f.Search))
		w.add("(p.name ILIKE " + n +
			" OR p.description ILIKE " + n +
			" OR p.category ILIKE " + n +
			" OR EXISTS (SELECT 1 FROM unnest(p.tags) AS t(tag) WHERE t.tag ILIKE " + n + "))")
	}
	if f.MinPrice != nil {
		w.add("p.price >= " + w.arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		w.add("p.price <= " + w.arg(*f.MaxPrice))
	}
	if f.Featured != nil {
		w.add("p.featured = " + w.arg(*f.Featured))
	}
	if f.Author != "" {
		w.add("p.author_id = " + w.arg(f.Author))
	}
	return w.String(), w.args
}

func (q OwnerQuery) SQL() (string, []interface{}) {
	w := &where{}
	w.add("p.author_id = " + w.arg(q.Author))
	if q.Status != "" {
		w.add("p.status = " + w.arg(q.Status))
	}
	return w.String(), w.args
}

// ProductOrderBy renders the ORDER BY list. The id column breaks ties so that
// pages never overlap.
func (s Sort) ProductOrderBy() string {
	return orderBy(s, productSortColumns)
}

func (s Sort) PostOrderBy() string {
	return orderBy(s, postSortColumns)
}

func orderBy(s Sort, columns map[string]string) string {
	col, ok := columns[s.Field]
	if !ok {
		col = "p.created_at"
	}
	dir := " ASC"
	if s.Desc {
		dir = " DESC"
	}
	return col + dir + ", p.id" + dir
}

// LimitOffset renders the page window with placeholders continuing after n
// existing arguments.
func (p Page) LimitOffset(n int) (string, []interface{}) {
	return " LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2),
		[]interface{}{p.Limit, p.Offset()}
}

// likePattern wraps term for a contains match, escaping LIKE metacharacters.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
