package postgres

import (
	"context"
	"dressify/catalog"
	"dressify/models"

	"github.com/google/uuid"
)

// FavoriteStore keeps the ledger in the favorites table. The unique index on
// (user_id, product_id) decides races between concurrent inserts.
type FavoriteStore struct {
	db Querier
}

func (s *FavoriteStore) Add(ctx context.Context, userID, productID string) (*models.Favorite, error) {
	f := &models.Favorite{ID: uuid.NewString(), User: userID, Product: productID}
	err := s.db.QueryRow(ctx, `
		INSERT INTO favorites (id, user_id, product_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		f.ID, userID, productID,
	).Scan(&f.CreatedAt)
	if err != nil {
		return nil, translate(err, "insert favorite")
	}
	return f, nil
}

func (s *FavoriteStore) Remove(ctx context.Context, userID, productID string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return mustAffect(tag, err, "delete favorite")
}

func (s *FavoriteStore) CountByProducts(ctx context.Context, productIDs []string) (map[string]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT product_id, COUNT(*)
		FROM favorites
		WHERE product_id = ANY($1)
		GROUP BY product_id`,
		productIDs,
	)
	if err != nil {
		return nil, translate(err, "count favorites")
	}
	defer rows.Close()

	counts := make(map[string]int64, len(productIDs))
	for rows.Next() {
		var (
			id string
			n  int64
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, translate(err, "scan favorite count")
		}
		counts[id] = n
	}
	return counts, translate(rows.Err(), "iterate favorite counts")
}

func (s *FavoriteStore) FavoritedBy(ctx context.Context, userID string, productIDs []string) (map[string]bool, error) {
	rows, err := s.db.Query(ctx,
		`SELECT product_id FROM favorites WHERE user_id = $1 AND product_id = ANY($2)`,
		userID, productIDs,
	)
	if err != nil {
		return nil, translate(err, "select favorites")
	}
	defer rows.Close()

	out := make(map[string]bool, len(productIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, translate(err, "scan favorite")
		}
		out[id] = true
	}
	return out, translate(rows.Err(), "iterate favorites")
}

func (s *FavoriteStore) ListByUser(ctx context.Context, userID string, page catalog.Page) ([]models.FavoriteEntry, int64, error) {
	window, windowArgs := page.LimitOffset(1)
	rows, err := s.db.Query(ctx, `
		SELECT f.id, f.user_id, f.product_id, f.created_at, `+productColumns+`
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, f.id DESC`+window,
		userID, windowArgs[0], windowArgs[1],
	)
	if err != nil {
		return nil, 0, translate(err, "list favorites")
	}
	defer rows.Close()

	entries := make([]models.FavoriteEntry, 0, page.Limit)
	for rows.Next() {
		var (
			e models.FavoriteEntry
			p models.Product
		)
		err := rows.Scan(
			&e.ID, &e.User, &e.Product, &e.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.Image,
			&p.Images, &p.Status, &p.Featured, &p.Tags, &p.Likes, &p.LikedBy, &p.Views, &p.Sales,
			&p.Author, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, translate(err, "scan favorite entry")
		}
		e.Item = &p
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translate(err, "iterate favorite entries")
	}

	total, err := count(ctx, s.db, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`,
		[]interface{}{userID}, "count user favorites")
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
