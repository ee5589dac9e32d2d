package controllers

import (
	"dressify/catalog"
	"dressify/models"
	"dressify/store"
	"dressify/utils"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler serves every API route. Its dependencies are injected once at
// startup and shared by all requests.
type Handler struct {
	users      store.UserStore
	products   store.ProductStore
	favorites  store.FavoriteStore
	posts      store.PostStore
	aggregator *catalog.Aggregator
	tokens     *utils.TokenManager
	log        *slog.Logger
}

func NewHandler(stores store.Stores, tokens *utils.TokenManager, logger *slog.Logger) *Handler {
	return &Handler{
		users:      stores.Users,
		products:   stores.Products,
		favorites:  stores.Favorites,
		posts:      stores.Posts,
		aggregator: catalog.NewAggregator(stores.Favorites),
		tokens:     tokens,
		log:        logger,
	}
}

func queryParams(c *fiber.Ctx) catalog.Params {
	return func(key string) string { return c.Query(key) }
}

// pathID reads a record id from the route and rejects malformed ones before
// they reach the store.
func pathID(c *fiber.Ctx, kind string) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", models.NewError(models.InvalidParameter, "Invalid "+kind+" ID format")
	}
	return id.String(), nil
}

func bindBody(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return &models.AppError{Kind: models.InvalidParameter, Message: "Invalid request body", Err: err}
	}
	return nil
}

// storeError classifies a store failure for the client.
func storeError(err error, notFound, failed string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.NewError(models.NotFound, notFound)
	case errors.Is(err, store.ErrDuplicate):
		return &models.AppError{Kind: models.DuplicateKey, Message: "Record already exists", Err: err}
	default:
		return models.Internal(failed, err)
	}
}
