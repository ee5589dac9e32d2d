package controllers

import (
	"dressify/catalog"
	"dressify/middleware"
	"dressify/models"

	"github.com/gofiber/fiber/v2"
)

// ListPosts - GET /api/posts (published posts unless a status is asked for)
func (h *Handler) ListPosts(c *fiber.Ctx) error {
	q, err := catalog.ParsePostQuery(queryParams(c), models.PostPublished)
	if err != nil {
		return err
	}
	return h.findPosts(c, q)
}

// MyPosts - GET /api/posts/my-posts (every status by default)
func (h *Handler) MyPosts(c *fiber.Ctx) error {
	q, err := catalog.ParsePostQuery(queryParams(c), "")
	if err != nil {
		return err
	}
	q.Filter.Author = middleware.Auth(c).UserID
	return h.findPosts(c, q)
}

func (h *Handler) findPosts(c *fiber.Ctx, q catalog.PostQuery) error {
	posts, total, err := h.posts.Find(c.UserContext(), q)
	if err != nil {
		return models.Internal("Server error getting posts", err)
	}
	return c.JSON(models.Paginated(posts, models.NewPagination(q.Page.Number, q.Page.Limit, total)))
}

// GetPost - GET /api/posts/:id
// Unpublished posts are visible to their author only.
func (h *Handler) GetPost(c *fiber.Ctx) error {
	id, err := pathID(c, "post")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	post, err := h.posts.Get(ctx, id)
	if err != nil {
		return storeError(err, "Post not found", "Server error getting post")
	}
	if post.Status != models.PostPublished && post.Author != middleware.Auth(c).UserID {
		return models.NewError(models.NotFound, "Post not found")
	}

	if err := h.posts.IncrementViews(ctx, id); err != nil {
		h.log.Warn("increment post views", "post_id", id, "error", err)
	} else {
		post.Views++
	}
	return c.JSON(models.Success("", post))
}

// CreatePost - POST /api/posts
func (h *Handler) CreatePost(c *fiber.Ctx) error {
	var in models.PostInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if errs := in.Validate(false); len(errs) > 0 {
		return models.Validation(errs)
	}

	post := in.NewPost(middleware.Auth(c).UserID)
	if err := h.posts.Create(c.UserContext(), &post); err != nil {
		return storeError(err, "User not found", "Server error creating post")
	}
	return c.Status(fiber.StatusCreated).JSON(models.Success("Post created successfully", post))
}

// UpdatePost - PUT /api/posts/:id (owner only)
func (h *Handler) UpdatePost(c *fiber.Ctx) error {
	var in models.PostInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	if errs := in.Validate(true); len(errs) > 0 {
		return models.Validation(errs)
	}

	post, err := h.ownedPost(c, "update")
	if err != nil {
		return err
	}

	in.Apply(post)
	if err := h.posts.Update(c.UserContext(), post); err != nil {
		return storeError(err, "Post not found", "Server error updating post")
	}
	return c.JSON(models.Success("Post updated successfully", post))
}

// DeletePost - DELETE /api/posts/:id (owner only)
func (h *Handler) DeletePost(c *fiber.Ctx) error {
	post, err := h.ownedPost(c, "delete")
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.UserContext(), post.ID); err != nil {
		return storeError(err, "Post not found", "Server error deleting post")
	}
	return c.JSON(models.Success("Post deleted successfully", nil))
}

func (h *Handler) ownedPost(c *fiber.Ctx, action string) (*models.Post, error) {
	id, err := pathID(c, "post")
	if err != nil {
		return nil, err
	}

	post, err := h.posts.Get(c.UserContext(), id)
	if err != nil {
		return nil, storeError(err, "Post not found", "Server error loading post")
	}
	if post.Author != middleware.Auth(c).UserID {
		return nil, models.NewError(models.Forbidden, "Not authorized to "+action+" this post")
	}
	return post, nil
}
