package controllers

import (
	"bytes"
	"context"
	"dressify/middleware"
	"dressify/models"
	"dressify/store"
	"dressify/store/memory"
	"dressify/utils"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingAuthorProducts fails inserts the way the postgres store does when
// author_id has no users row.
type missingAuthorProducts struct {
	store.ProductStore
}

func (missingAuthorProducts) Create(context.Context, *models.Product) error {
	return errors.Wrap(store.ErrNotFound, "insert product: products_author_id_fkey")
}

type missingAuthorPosts struct {
	store.PostStore
}

func (missingAuthorPosts) Create(context.Context, *models.Post) error {
	return errors.Wrap(store.ErrNotFound, "insert post: posts_author_id_fkey")
}

func TestCreateWithUnknownAuthor(t *testing.T) {
	stores := memory.New()
	stores.Products = missingAuthorProducts{stores.Products}
	stores.Posts = missingAuthorPosts{stores.Posts}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := utils.NewTokenManager("secret", time.Hour)
	h := NewHandler(stores, tokens, logger)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Post("/products", middleware.RequireAuth(tokens), h.CreateProduct)
	app.Post("/posts", middleware.RequireAuth(tokens), h.CreatePost)

	token, err := tokens.Generate("deleted-user")
	require.NoError(t, err)

	tests := []struct {
		path string
		body fiber.Map
	}{
		{path: "/products", body: fiber.Map{
			"name": "Test Item", "description": "A test product description",
			"price": 10, "category": "Clothing", "stock": 5,
		}},
		{path: "/posts", body: fiber.Map{"title": "Linen", "content": "Breathable and light"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			raw, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(fiber.MethodPost, tt.path, bytes.NewReader(raw))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var out models.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "User not found", out.Message)
		})
	}
}
