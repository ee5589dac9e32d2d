package controllers

import (
	"dressify/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health - GET /api/health
func Health(env string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Dressify API is running!",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
		})
	}
}

// Ping - GET /api/test, used by the frontend to probe connectivity.
func Ping(c *fiber.Ctx) error {
	return c.JSON(models.Success("Backend connection successful!", fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"cors":      "enabled",
	}))
}

// Index - GET /
func Index(c *fiber.Ctx) error {
	return c.JSON(models.Success("Welcome to Dressify API", fiber.Map{
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"auth":      "/api/auth",
			"posts":     "/api/posts",
			"products":  "/api/products",
			"favorites": "/api/favorites",
			"health":    "/api/health",
			"test":      "/api/test",
		},
	}))
}
