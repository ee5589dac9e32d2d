// Package memory is an in-process store backend. It keeps every record in
// maps guarded by one mutex and is used when no database is configured and
// in tests.
package memory

import (
	"context"
	"dressify/catalog"
	"dressify/models"
	"dressify/store"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type favoriteKey struct {
	user    string
	product string
}

// DB holds all collections.
type DB struct {
	mu        sync.RWMutex
	users     map[string]*models.User
	emails    map[string]string
	products  map[string]*models.Product
	favorites map[favoriteKey]*models.Favorite
	posts     map[string]*models.Post
	now       func() time.Time
}

func newDB() *DB {
	return &DB{
		users:     make(map[string]*models.User),
		emails:    make(map[string]string),
		products:  make(map[string]*models.Product),
		favorites: make(map[favoriteKey]*models.Favorite),
		posts:     make(map[string]*models.Post),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// New returns stores backed by a fresh DB.
func New() store.Stores {
	db := newDB()
	return store.Stores{
		Users:     (*userStore)(db),
		Products:  (*productStore)(db),
		Favorites: (*favoriteStore)(db),
		Posts:     (*postStore)(db),
	}
}

type userStore DB

func (s *userStore) Create(_ context.Context, u *models.User) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, taken := db.emails[u.Email]; taken {
		return store.ErrDuplicate
	}
	u.ID = uuid.NewString()
	u.CreatedAt = db.now()
	u.UpdatedAt = u.CreatedAt

	stored := *u
	db.users[u.ID] = &stored
	db.emails[u.Email] = u.ID
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (*models.User, error) {
	db := (*DB)(s)
	db.mu.RLock()
	defer db.mu.RUnlock()

	u, ok := db.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	db := (*DB)(s)
	db.mu.RLock()
	id, ok := db.emails[email]
	db.mu.RUnlock()
	if !ok {
		return nil, store.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

type productStore DB

func (s *productStore) Create(_ context.Context, p *models.Product) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = db.now()
	p.UpdatedAt = p.CreatedAt
	db.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *productStore) Get(_ context.Context, id string) (*models.Product, error) {
	db := (*DB)(s)
	db.mu.RLock()
	defer db.mu.RUnlock()

	p, ok := db.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (s *productStore) Update(_ context.Context, p *models.Product) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	current, ok := db.products[p.ID]
	if !ok {
		return store.ErrNotFound
	}
	p.UpdatedAt = db.now()
	// likes, likedBy and views are owned by their own operations.
	p.Likes = current.Likes
	p.LikedBy = slices.Clone(current.LikedBy)
	p.Views = current.Views
	db.products[p.ID] = cloneProduct(p)
	return nil
}

func (s *productStore) Delete(_ context.Context, id string) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(db.products, id)
	for key := range db.favorites {
		if key.product == id {
			delete(db.favorites, key)
		}
	}
	return nil
}

func (s *productStore) Find(_ context.Context, q catalog.ProductQuery) ([]models.Product, int64, error) {
	return s.collect(q.Filter.Match, q.Sort, q.Page)
}

func (s *productStore) FindByOwner(_ context.Context, q catalog.OwnerQuery) ([]models.Product, int64, error) {
	return s.collect(q.Match, catalog.Sort{Field: "createdAt", Desc: true}, q.Page)
}

func (s *productStore) collect(match func(*models.Product) bool, sort catalog.Sort, page catalog.Page) ([]models.Product, int64, error) {
	db := (*DB)(s)
	db.mu.RLock()
	matched := make([]models.Product, 0)
	for _, p := range db.products {
		if match(p) {
			matched = append(matched, *cloneProduct(p))
		}
	}
	db.mu.RUnlock()

	sort.SortProducts(matched)
	return catalog.Window(matched, page), int64(len(matched)), nil
}

func (s *productStore) ToggleLike(_ context.Context, productID, userID string) (*models.Product, error) {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.products[productID]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.ToggleLike(userID)
	return cloneProduct(p), nil
}

func (s *productStore) IncrementViews(_ context.Context, id string) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.products[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Views++
	return nil
}

func (s *productStore) Stats(_ context.Context, authorID string) (models.DashboardStats, error) {
	db := (*DB)(s)
	db.mu.RLock()
	defer db.mu.RUnlock()

	var stats models.DashboardStats
	for _, p := range db.products {
		if p.Author != authorID {
			continue
		}
		stats.TotalProducts++
		if p.Status == models.ProductActive {
			stats.ActiveProducts++
		}
		stats.TotalSales += int64(p.Sales)
		stats.TotalRevenue += float64(p.Sales) * p.Price
	}
	return stats, nil
}

type favoriteStore DB

func (s *favoriteStore) Add(_ context.Context, userID, productID string) (*models.Favorite, error) {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.products[productID]; !ok {
		return nil, store.ErrNotFound
	}
	key := favoriteKey{user: userID, product: productID}
	if _, ok := db.favorites[key]; ok {
		return nil, store.ErrDuplicate
	}
	f := &models.Favorite{
		ID:        uuid.NewString(),
		User:      userID,
		Product:   productID,
		CreatedAt: db.now(),
	}
	db.favorites[key] = f
	out := *f
	return &out, nil
}

func (s *favoriteStore) Remove(_ context.Context, userID, productID string) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	key := favoriteKey{user: userID, product: productID}
	if _, ok := db.favorites[key]; !ok {
		return store.ErrNotFound
	}
	delete(db.favorites, key)
	return nil
}

func (s *favoriteStore) CountByProducts(_ context.Context, productIDs []string) (map[string]int64, error) {
	db := (*DB)(s)
	db.mu.RLock()
	defer db.mu.RUnlock()

	counts := make(map[string]int64, len(productIDs))
	for key := range db.favorites {
		if slices.Contains(productIDs, key.product) {
			counts[key.product]++
		}
	}
	return counts, nil
}

func (s *favoriteStore) FavoritedBy(_ context.Context, userID string, productIDs []string) (map[string]bool, error) {
	db := (*DB)(s)
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		if _, ok := db.favorites[favoriteKey{user: userID, product: id}]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (s *favoriteStore) ListByUser(_ context.Context, userID string, page catalog.Page) ([]models.FavoriteEntry, int64, error) {
	db := (*DB)(s)
	db.mu.RLock()
	entries := make([]models.FavoriteEntry, 0)
	for key, f := range db.favorites {
		if key.user != userID {
			continue
		}
		entry := models.FavoriteEntry{Favorite: *f}
		if p, ok := db.products[key.product]; ok {
			entry.Item = cloneProduct(p)
		}
		entries = append(entries, entry)
	}
	db.mu.RUnlock()

	slices.SortStableFunc(entries, func(a, b models.FavoriteEntry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return catalog.Window(entries, page), int64(len(entries)), nil
}

type postStore DB

func (s *postStore) Create(_ context.Context, p *models.Post) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = db.now()
	p.UpdatedAt = p.CreatedAt
	p.Derive()
	db.posts[p.ID] = clonePost(p)
	return nil
}

func (s *postStore) Get(_ context.Context, id string) (*models.Post, error) {
	db := (*DB)(s)
	db.mu.RLock()
	defer db.mu.RUnlock()

	p, ok := db.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clonePost(p), nil
}

func (s *postStore) Update(_ context.Context, p *models.Post) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	current, ok := db.posts[p.ID]
	if !ok {
		return store.ErrNotFound
	}
	p.UpdatedAt = db.now()
	p.Views = current.Views
	p.Derive()
	db.posts[p.ID] = clonePost(p)
	return nil
}

func (s *postStore) Delete(_ context.Context, id string) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(db.posts, id)
	return nil
}

func (s *postStore) Find(_ context.Context, q catalog.PostQuery) ([]models.Post, int64, error) {
	db := (*DB)(s)
	db.mu.RLock()
	matched := make([]models.Post, 0)
	for _, p := range db.posts {
		if q.Filter.Match(p) {
			matched = append(matched, *clonePost(p))
		}
	}
	db.mu.RUnlock()

	q.Sort.SortPosts(matched)
	return catalog.Window(matched, q.Page), int64(len(matched)), nil
}

func (s *postStore) IncrementViews(_ context.Context, id string) error {
	db := (*DB)(s)
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.posts[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Views++
	return nil
}

func cloneProduct(p *models.Product) *models.Product {
	out := *p
	out.Images = slices.Clone(p.Images)
	out.Tags = slices.Clone(p.Tags)
	out.LikedBy = slices.Clone(p.LikedBy)
	return &out
}

func clonePost(p *models.Post) *models.Post {
	out := *p
	out.Tags = slices.Clone(p.Tags)
	return &out
}
