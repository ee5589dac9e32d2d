package controllers

import (
	"dressify/catalog"
	"dressify/middleware"
	"dressify/models"

	"github.com/gofiber/fiber/v2"
)

// MyProducts - GET /api/products/my-products
func (h *Handler) MyProducts(c *fiber.Ctx) error {
	q, err := catalog.ParseOwnerQuery(middleware.Auth(c).UserID, queryParams(c))
	if err != nil {
		return err
	}

	products, total, err := h.products.FindByOwner(c.UserContext(), q)
	if err != nil {
		return models.Internal("Server error getting user products", err)
	}
	return c.JSON(models.Paginated(products, models.NewPagination(q.Page.Number, q.Page.Limit, total)))
}

// CreateProduct - POST /api/products
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if errs := in.Validate(false); len(errs) > 0 {
		return models.Validation(errs)
	}

	product := in.NewProduct(middleware.Auth(c).UserID)
	if err := h.products.Create(c.UserContext(), &product); err != nil {
		return storeError(err, "User not found", "Server error creating product")
	}

	h.log.Info("product created", "product_id", product.ID, "author", product.Author)
	return c.Status(fiber.StatusCreated).JSON(models.Success("Product created successfully", product))
}

// UpdateProduct - PUT /api/products/:id (owner only)
func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if errs := in.Validate(true); len(errs) > 0 {
		return models.Validation(errs)
	}

	product, err := h.ownedProduct(c, "update")
	if err != nil {
		return err
	}

	in.Apply(product)
	if err := h.products.Update(c.UserContext(), product); err != nil {
		return storeError(err, "Product not found", "Server error updating product")
	}
	return c.JSON(models.Success("Product updated successfully", product))
}

// DeleteProduct - DELETE /api/products/:id (owner only). Favorites of the
// product go with it.
func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	product, err := h.ownedProduct(c, "delete")
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.UserContext(), product.ID); err != nil {
		return storeError(err, "Product not found", "Server error deleting product")
	}

	h.log.Info("product deleted", "product_id", product.ID, "author", product.Author)
	return c.JSON(models.Success("Product deleted successfully", nil))
}

// ownedProduct loads the product named in the path and checks that the
// caller is its author.
func (h *Handler) ownedProduct(c *fiber.Ctx, action string) (*models.Product, error) {
	id, err := pathID(c, "product")
	if err != nil {
		return nil, err
	}

	product, err := h.products.Get(c.UserContext(), id)
	if err != nil {
		return nil, storeError(err, "Product not found", "Server error loading product")
	}
	if product.Author != middleware.Auth(c).UserID {
		return nil, models.NewError(models.Forbidden, "Not authorized to "+action+" this product")
	}
	return product, nil
}

type likeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

// ToggleLike - POST /api/products/:id/like
// This only touches likes/likedBy; the favorite ledger is separate.
func (h *Handler) ToggleLike(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}

	userID := middleware.Auth(c).UserID
	product, err := h.products.ToggleLike(c.UserContext(), id, userID)
	if err != nil {
		return storeError(err, "Product not found", "Server error toggling like")
	}
	return c.JSON(models.Success("", likeResult{Likes: product.Likes, IsLiked: product.LikedByUser(userID)}))
}

// DashboardStats - GET /api/products/dashboard/stats
func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.products.Stats(c.UserContext(), middleware.Auth(c).UserID)
	if err != nil {
		return models.Internal("Server error getting dashboard stats", err)
	}
	return c.JSON(models.Success("", stats))
}
