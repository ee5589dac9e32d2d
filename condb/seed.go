package condb

import (
	"context"
	"dressify/models"
	"dressify/store"
	"dressify/utils"
	"errors"
	"fmt"
	"log/slog"
)

const demoPassword = "password123"

var demoUsers = []models.User{
	{Name: "Ava Stone", Email: "ava@dressify.dev"},
	{Name: "Leo Park", Email: "leo@dressify.dev"},
}

var demoProducts = []models.Product{
	{Name: "Linen Summer Dress", Description: "Breathable linen midi dress with a relaxed fit.", Price: 79.9, Category: "Clothing", Stock: 14, Featured: true, Tags: []string{"summer", "linen"}},
	{Name: "Leather Ankle Boots", Description: "Hand-finished leather boots with a stacked heel.", Price: 129, Category: "Shoes", Stock: 6, Tags: []string{"leather", "autumn"}},
	{Name: "Canvas Sneakers", Description: "Everyday low-top sneakers in organic canvas.", Price: 59, Category: "Shoes", Stock: 30, Tags: []string{"casual"}},
	{Name: "Woven Tote Bag", Description: "Roomy straw tote with cotton lining and inner pocket.", Price: 45, Category: "Bags", Stock: 3, Tags: []string{"summer", "beach"}},
	{Name: "Gold Hoop Earrings", Description: "Lightweight hoops in recycled gold vermeil.", Price: 35, Category: "Jewelry", Stock: 0, Featured: true, Tags: []string{"gift"}},
}

var demoPosts = []models.Post{
	{Title: "Five Ways to Style Linen", Content: "Linen is the fabric of the season. Pair a loose shirt with tailored shorts, or layer a dress over a fitted tee for cooler evenings.", Category: "Style Tips", Status: models.PostPublished, Tags: []string{"linen"}},
	{Title: "Why We Use Recycled Gold", Content: "Every piece in our jewelry line is cast from recycled gold, which cuts mining waste without changing the finish you love.", Category: "Sustainability", Status: models.PostPublished},
}

// Seed inserts demo users, products and posts. Users that already exist are
// skipped together with their content, so running it twice is harmless.
func Seed(ctx context.Context, stores store.Stores, logger *slog.Logger) error {
	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	for i, tmpl := range demoUsers {
		user := tmpl
		user.Password = hash
		if err := stores.Users.Create(ctx, &user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				logger.Info("seed user exists", "email", user.Email)
				continue
			}
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
		logger.Info("seed user created", "email", user.Email, "id", user.ID)

		for j := i; j < len(demoProducts); j += len(demoUsers) {
			p := newDemoProduct(demoProducts[j], user.ID)
			if err := stores.Products.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed product %q: %w", p.Name, err)
			}
		}
		if i < len(demoPosts) {
			post := demoPosts[i]
			post.Author = user.ID
			post.Image = models.DefaultPostImage
			post.Tags = append([]string{}, post.Tags...)
			if err := stores.Posts.Create(ctx, &post); err != nil {
				return fmt.Errorf("seed post %q: %w", post.Title, err)
			}
		}
	}
	return nil
}

func newDemoProduct(tmpl models.Product, authorID string) models.Product {
	p := tmpl
	p.Image = models.DefaultProductImage
	p.Images = []string{}
	p.Tags = append([]string{}, tmpl.Tags...)
	p.LikedBy = []string{}
	p.Status = models.ProductActive
	p.IsActive = true
	p.Author = authorID
	return p
}
