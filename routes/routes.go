package routes

import (
	"dressify/config"
	"dressify/controllers"
	"dressify/middleware"
	"dressify/store"
	"dressify/utils"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber app with the middleware chain and every route
// wired to the given stores.
func NewApp(cfg *config.Config, stores store.Stores, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Dressify API",
		ErrorHandler: controllers.ErrorHandler(logger),
	})

	middleware.Setup(app, cfg)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)
	h := controllers.NewHandler(stores, tokens, logger)
	RegisterRoutes(app, h, tokens, cfg.AppEnv)
	return app
}

func RegisterRoutes(app *fiber.App, h *controllers.Handler, tokens *utils.TokenManager, env string) {
	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	app.Get("/", controllers.Index)

	api := app.Group("/api")
	api.Get("/health", controllers.Health(env))
	api.Get("/test", controllers.Ping)

	// auth
	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/me", requireAuth, h.Me)

	// products; fixed paths go before /:id
	products := api.Group("/products")
	products.Get("/", optionalAuth, h.ListProducts)
	products.Get("/my-products", requireAuth, h.MyProducts)
	products.Get("/dashboard/stats", requireAuth, h.DashboardStats)
	products.Get("/:id", optionalAuth, h.GetProduct)
	products.Post("/", requireAuth, h.CreateProduct)
	products.Put("/:id", requireAuth, h.UpdateProduct)
	products.Delete("/:id", requireAuth, h.DeleteProduct)
	products.Post("/:id/like", requireAuth, h.ToggleLike)
	products.Post("/:id/favorite", requireAuth, h.AddFavorite)
	products.Delete("/:id/favorite", requireAuth, h.RemoveFavorite)

	// favorites
	api.Get("/favorites", requireAuth, h.ListFavorites)

	// posts
	posts := api.Group("/posts")
	posts.Get("/", h.ListPosts)
	posts.Get("/my-posts", requireAuth, h.MyPosts)
	posts.Get("/:id", optionalAuth, h.GetPost)
	posts.Post("/", requireAuth, h.CreatePost)
	posts.Put("/:id", requireAuth, h.UpdatePost)
	posts.Delete("/:id", requireAuth, h.DeletePost)

	app.Use(controllers.NotFound)
}
