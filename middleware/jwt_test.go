package middleware

import (
	"dressify/models"
	"dressify/utils"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(tokens *utils.TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *models.AppError
			if errors.As(err, &appErr) {
				return c.Status(appErr.Kind.Status()).SendString(appErr.Message)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	whoami := func(c *fiber.Ctx) error {
		if !Auth(c).Authenticated() {
			return c.SendString("anonymous")
		}
		return c.SendString(Auth(c).UserID)
	}
	app.Get("/required", RequireAuth(tokens), whoami)
	app.Get("/optional", OptionalAuth(tokens), whoami)
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireAuth(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	app := newTestApp(tokens)
	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	status, body := get(t, app, "/required", token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body)

	status, body = get(t, app, "/required", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "No token provided", body)

	status, body = get(t, app, "/required", "garbage")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body)
}

func TestRequireAuthExpired(t *testing.T) {
	tokens := utils.NewTokenManager("secret", -time.Minute)
	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	status, body := get(t, newTestApp(tokens), "/required", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Token expired", body)
}

func TestOptionalAuth(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	app := newTestApp(tokens)
	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	_, body := get(t, app, "/optional", token)
	assert.Equal(t, "user-1", body)

	_, body = get(t, app, "/optional", "")
	assert.Equal(t, "anonymous", body)

	status, body := get(t, app, "/optional", "garbage")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}
