package middleware

import (
	"dressify/models"
	"dressify/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const authLocal = "auth"

// AuthContext says who is calling. The zero value is an anonymous caller.
type AuthContext struct {
	UserID string
}

func (a AuthContext) Authenticated() bool {
	return a.UserID != ""
}

// Auth returns the caller stored by RequireAuth or OptionalAuth, or an
// anonymous context when neither ran.
func Auth(c *fiber.Ctx) AuthContext {
	if a, ok := c.Locals(authLocal).(AuthContext); ok {
		return a
	}
	return AuthContext{}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens *utils.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return models.NewError(models.Unauthorized, "No token provided")
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				return models.NewError(models.Unauthorized, "Token expired")
			}
			return models.NewError(models.Unauthorized, "Invalid token")
		}

		c.Locals(authLocal, AuthContext{UserID: userID})
		return c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// otherwise continues anonymously; a bad token is not an error here.
func OptionalAuth(tokens *utils.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := AuthContext{}
		if token, ok := bearerToken(c); ok {
			if userID, err := tokens.Parse(token); err == nil {
				auth.UserID = userID
			}
		}
		c.Locals(authLocal, auth)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}
