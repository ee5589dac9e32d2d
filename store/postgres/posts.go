package postgres

import (
	"context"
	"dressify/catalog"
	"dressify/models"

	"github.com/google/uuid"
)

type PostStore struct {
	db Querier
}

const postColumns = `p.id, p.title, p.content, p.excerpt, p.category, p.image, p.author_id,
	p.status, p.featured, p.views, p.likes, p.tags, p.read_time, p.created_at, p.updated_at`

func scanPost(row scanner, p *models.Post) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Category, &p.Image, &p.Author,
		&p.Status, &p.Featured, &p.Views, &p.Likes, &p.Tags, &p.ReadTime, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (s *PostStore) Create(ctx context.Context, p *models.Post) error {
	p.ID = uuid.NewString()
	p.Derive()
	err := s.db.QueryRow(ctx, `
		INSERT INTO posts
			(id, title, content, excerpt, category, image, author_id, status, featured, views, likes, tags, read_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at`,
		p.ID, p.Title, p.Content, p.Excerpt, p.Category, p.Image, p.Author,
		p.Status, p.Featured, p.Views, p.Likes, nonNil(p.Tags), p.ReadTime,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return translate(err, "insert post")
}

func (s *PostStore) Get(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	row := s.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id)
	if err := scanPost(row, &p); err != nil {
		return nil, translate(err, "select post")
	}
	return &p, nil
}

func (s *PostStore) Update(ctx context.Context, p *models.Post) error {
	p.Derive()
	err := s.db.QueryRow(ctx, `
		UPDATE posts SET
			title = $2, content = $3, excerpt = $4, category = $5, image = $6,
			status = $7, featured = $8, tags = $9, read_time = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.Title, p.Content, p.Excerpt, p.Category, p.Image,
		p.Status, p.Featured, nonNil(p.Tags), p.ReadTime,
	).Scan(&p.UpdatedAt)
	return translate(err, "update post")
}

func (s *PostStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return mustAffect(tag, err, "delete post")
}

func (s *PostStore) Find(ctx context.Context, q catalog.PostQuery) ([]models.Post, int64, error) {
	where, args := q.Filter.SQL()
	window, windowArgs := q.Page.LimitOffset(len(args))

	rows, err := s.db.Query(ctx,
		`SELECT `+postColumns+` FROM posts p WHERE `+where+` ORDER BY `+q.Sort.PostOrderBy()+window,
		append(append([]interface{}{}, args...), windowArgs...)...,
	)
	if err != nil {
		return nil, 0, translate(err, "query posts")
	}
	defer rows.Close()

	posts := make([]models.Post, 0, q.Page.Limit)
	for rows.Next() {
		var p models.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, 0, translate(err, "scan post")
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translate(err, "iterate posts")
	}

	total, err := count(ctx, s.db, `SELECT COUNT(*) FROM posts p WHERE `+where, args, "count posts")
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostStore) IncrementViews(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	return mustAffect(tag, err, "increment post views")
}
