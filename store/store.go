// Package store defines the persistence contracts for users, the product and
// post catalog and the favorite ledger.
package store

import (
	"context"
	"dressify/catalog"
	"dressify/models"
	"errors"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate key")
)

type UserStore interface {
	// Create stores u, assigning its id and timestamps. A taken email
	// returns ErrDuplicate.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, id string) (*models.Product, error)
	// Update saves the mutable fields of p and refreshes its updatedAt.
	Update(ctx context.Context, p *models.Product) error
	// Delete removes the product and its favorites.
	Delete(ctx context.Context, id string) error
	// Find returns one page of matches and the total match count.
	Find(ctx context.Context, q catalog.ProductQuery) ([]models.Product, int64, error)
	FindByOwner(ctx context.Context, q catalog.OwnerQuery) ([]models.Product, int64, error)
	// ToggleLike flips userID's membership in likedBy and moves likes with
	// it, atomically. It returns the updated product.
	ToggleLike(ctx context.Context, productID, userID string) (*models.Product, error)
	IncrementViews(ctx context.Context, id string) error
	Stats(ctx context.Context, authorID string) (models.DashboardStats, error)
}

type FavoriteStore interface {
	catalog.FavoriteLedger

	// Add records a favorite. It returns ErrNotFound when the product does
	// not exist and ErrDuplicate when the pair is already stored; of several
	// concurrent calls for one pair exactly one succeeds.
	Add(ctx context.Context, userID, productID string) (*models.Favorite, error)
	// Remove deletes the pair, or returns ErrNotFound.
	Remove(ctx context.Context, userID, productID string) error
	// ListByUser returns the user's favorites newest first with products
	// attached, and the user's total favorite count.
	ListByUser(ctx context.Context, userID string, page catalog.Page) ([]models.FavoriteEntry, int64, error)
}

type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, q catalog.PostQuery) ([]models.Post, int64, error)
	IncrementViews(ctx context.Context, id string) error
}

// Stores bundles one backend's implementations.
type Stores struct {
	Users     UserStore
	Products  ProductStore
	Favorites FavoriteStore
	Posts     PostStore
}
