package catalog

import (
	"context"
	"dressify/models"

	"golang.org/x/sync/errgroup"
)

// FavoriteLedger is the read side of the favorite store the aggregator needs.
type FavoriteLedger interface {
	// CountByProducts returns the number of favorites per product id. Ids
	// without favorites may be absent from the map.
	CountByProducts(ctx context.Context, productIDs []string) (map[string]int64, error)
	// FavoritedBy returns the subset of productIDs userID has favorited.
	FavoritedBy(ctx context.Context, userID string, productIDs []string) (map[string]bool, error)
}

// Aggregator attaches favorite metadata to product pages. Every call reads the
// ledger afresh.
type Aggregator struct {
	ledger FavoriteLedger
}

func NewAggregator(ledger FavoriteLedger) *Aggregator {
	return &Aggregator{ledger: ledger}
}

// Enrich returns one view per product in input order. isFavorite is only
// looked up when userID is non-empty; favoriteCount always is. Both batched
// lookups run concurrently.
func (a *Aggregator) Enrich(ctx context.Context, products []models.Product, userID string) ([]models.ProductView, error) {
	views := make([]models.ProductView, len(products))
	if len(products) == 0 {
		return views, nil
	}

	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	var (
		counts    map[string]int64
		favorited map[string]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = a.ledger.CountByProducts(gctx, ids)
		return err
	})
	if userID != "" {
		g.Go(func() error {
			var err error
			favorited, err = a.ledger.FavoritedBy(gctx, userID, ids)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range products {
		p := &products[i]
		views[i] = models.ProductView{
			Product:       *p,
			FavoriteCount: counts[p.ID],
			IsFavorite:    favorited[p.ID],
			IsAvailable:   p.IsAvailable(),
			StockStatus:   p.StockStatus(),
		}
	}
	return views, nil
}

// EnrichOne is Enrich for a single product.
func (a *Aggregator) EnrichOne(ctx context.Context, product models.Product, userID string) (models.ProductView, error) {
	views, err := a.Enrich(ctx, []models.Product{product}, userID)
	if err != nil {
		return models.ProductView{}, err
	}
	return views[0], nil
}
