package postgres

import (
	"context"
	"dressify/catalog"
	"dressify/models"

	"github.com/google/uuid"
)

type ProductStore struct {
	db Querier
}

const productColumns = `p.id, p.name, p.description, p.price, p.category, p.stock, p.image,
	p.images, p.status, p.featured, p.tags, p.likes, p.liked_by, p.views, p.sales,
	p.author_id, p.is_active, p.created_at, p.updated_at`

func scanProduct(row scanner, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.Image,
		&p.Images, &p.Status, &p.Featured, &p.Tags, &p.Likes, &p.LikedBy, &p.Views, &p.Sales,
		&p.Author, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (s *ProductStore) Create(ctx context.Context, p *models.Product) error {
	p.ID = uuid.NewString()
	err := s.db.QueryRow(ctx, `
		INSERT INTO products
			(id, name, description, price, category, stock, image, images, status,
			 featured, tags, likes, liked_by, views, sales, author_id, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock, p.Image, nonNil(p.Images), p.Status,
		p.Featured, nonNil(p.Tags), p.Likes, nonNil(p.LikedBy), p.Views, p.Sales, p.Author, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return translate(err, "insert product")
}

func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	row := s.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id)
	if err := scanProduct(row, &p); err != nil {
		return nil, translate(err, "select product")
	}
	return &p, nil
}

// Update writes the seller-editable columns. Likes, likedBy and views are
// left to their own operations.
func (s *ProductStore) Update(ctx context.Context, p *models.Product) error {
	err := s.db.QueryRow(ctx, `
		UPDATE products SET
			name = $2, description = $3, price = $4, category = $5, stock = $6,
			image = $7, images = $8, status = $9, featured = $10, tags = $11,
			is_active = $12, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock,
		p.Image, nonNil(p.Images), p.Status, p.Featured, nonNil(p.Tags), p.IsActive,
	).Scan(&p.UpdatedAt)
	return translate(err, "update product")
}

// Delete relies on ON DELETE CASCADE to drop the product's favorites.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return mustAffect(tag, err, "delete product")
}

func (s *ProductStore) Find(ctx context.Context, q catalog.ProductQuery) ([]models.Product, int64, error) {
	where, args := q.Filter.SQL()
	return s.page(ctx, where, args, q.Sort.ProductOrderBy(), q.Page)
}

func (s *ProductStore) FindByOwner(ctx context.Context, q catalog.OwnerQuery) ([]models.Product, int64, error) {
	where, args := q.SQL()
	return s.page(ctx, where, args, catalog.Sort{Field: "createdAt", Desc: true}.ProductOrderBy(), q.Page)
}

func (s *ProductStore) page(ctx context.Context, where string, args []interface{}, order string, page catalog.Page) ([]models.Product, int64, error) {
	window, windowArgs := page.LimitOffset(len(args))

	rows, err := s.db.Query(ctx,
		`SELECT `+productColumns+` FROM products p WHERE `+where+` ORDER BY `+order+window,
		append(append([]interface{}{}, args...), windowArgs...)...,
	)
	if err != nil {
		return nil, 0, translate(err, "query products")
	}
	defer rows.Close()

	products := make([]models.Product, 0, page.Limit)
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, translate(err, "scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translate(err, "iterate products")
	}

	total, err := count(ctx, s.db, `SELECT COUNT(*) FROM products p WHERE `+where, args, "count products")
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ToggleLike flips membership and the counter in one statement. SET
// expressions all read the pre-update row, so both columns agree.
func (s *ProductStore) ToggleLike(ctx context.Context, productID, userID string) (*models.Product, error) {
	var p models.Product
	row := s.db.QueryRow(ctx, `
		UPDATE products p SET
			likes = CASE WHEN $2::text = ANY(p.liked_by) THEN GREATEST(p.likes - 1, 0) ELSE p.likes + 1 END,
			liked_by = CASE WHEN $2::text = ANY(p.liked_by)
				THEN array_remove(p.liked_by, $2::text)
				ELSE array_append(p.liked_by, $2::text) END
		WHERE p.id = $1
		RETURNING `+productColumns,
		productID, userID,
	)
	if err := scanProduct(row, &p); err != nil {
		return nil, translate(err, "toggle like")
	}
	return &p, nil
}

func (s *ProductStore) IncrementViews(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `UPDATE products SET views = views + 1 WHERE id = $1`, id)
	return mustAffect(tag, err, "increment product views")
}

func (s *ProductStore) Stats(ctx context.Context, authorID string) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COALESCE(SUM(sales), 0)::bigint,
			COALESCE(SUM(sales * price), 0)::double precision
		FROM products
		WHERE author_id = $1`,
		authorID,
	).Scan(&stats.TotalProducts, &stats.ActiveProducts, &stats.TotalSales, &stats.TotalRevenue)
	if err != nil {
		return models.DashboardStats{}, translate(err, "product stats")
	}
	return stats, nil
}

// nonNil keeps NOT NULL array columns from receiving SQL NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
