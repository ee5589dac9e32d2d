package controllers

import (
	"dressify/catalog"
	"dressify/middleware"
	"dressify/models"
	"dressify/store"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AddFavorite - POST /api/products/:id/favorite
func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}

	fav, err := h.favorites.Add(c.UserContext(), middleware.Auth(c).UserID, id)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return &models.AppError{Kind: models.DuplicateKey, Message: "Product is already in favorites", Err: err}
		}
		return storeError(err, "Product not found", "Server error adding favorite")
	}
	return c.Status(fiber.StatusCreated).JSON(models.Success("Product added to favorites", fav))
}

// RemoveFavorite - DELETE /api/products/:id/favorite
func (h *Handler) RemoveFavorite(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}

	if err := h.favorites.Remove(c.UserContext(), middleware.Auth(c).UserID, id); err != nil {
		return storeError(err, "Favorite not found", "Server error removing favorite")
	}
	return c.JSON(models.Success("Product removed from favorites", nil))
}

// ListFavorites - GET /api/favorites
func (h *Handler) ListFavorites(c *fiber.Ctx) error {
	page, err := catalog.ParsePageOnly(queryParams(c), catalog.DefaultPostLimit)
	if err != nil {
		return err
	}

	entries, total, err := h.favorites.ListByUser(c.UserContext(), middleware.Auth(c).UserID, page)
	if err != nil {
		return models.Internal("Server error getting favorites", err)
	}
	return c.JSON(models.Paginated(entries, models.NewPagination(page.Number, page.Limit, total)))
}
