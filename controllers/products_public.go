package controllers

import (
	"dressify/catalog"
	"dressify/middleware"
	"dressify/models"

	"github.com/gofiber/fiber/v2"
)

// ListProducts - GET /api/products (list + filter + sort + paginate)
// A valid token only adds isFavorite; anonymous callers get the same page.
func (h *Handler) ListProducts(c *fiber.Ctx) error {
	q, err := catalog.ParseProductQuery(queryParams(c))
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	products, total, err := h.products.Find(ctx, q)
	if err != nil {
		return models.Internal("Server error getting products", err)
	}

	views, err := h.aggregator.Enrich(ctx, products, middleware.Auth(c).UserID)
	if err != nil {
		return models.Internal("Server error getting products", err)
	}

	return c.JSON(models.Paginated(views, models.NewPagination(q.Page.Number, q.Page.Limit, total)))
}

// GetProduct - GET /api/products/:id
func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	product, err := h.products.Get(ctx, id)
	if err != nil {
		return storeError(err, "Product not found", "Server error getting product")
	}

	if err := h.products.IncrementViews(ctx, id); err != nil {
		h.log.Warn("increment product views", "product_id", id, "error", err)
	} else {
		product.Views++
	}

	view, err := h.aggregator.EnrichOne(ctx, *product, middleware.Auth(c).UserID)
	if err != nil {
		return models.Internal("Server error getting product", err)
	}
	return c.JSON(models.Success("", view))
}
