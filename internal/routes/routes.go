package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/richatenany98/wedding-planner/internal/apps"
	"github.com/richatenany98/wedding-planner/internal/config"
	"github.com/richatenany98/wedding-planner/internal/handlers"
	"github.com/richatenany98/wedding-planner/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	weddingHandler *handlers.WeddingHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no auth required)
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below requires a session and a resolved principal.
	// The scoping check itself runs in the handlers, after principal
	// resolution and before any storage call.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.ResolvePrincipal(db))

	protected.Post("/wedding-profile", weddingHandler.Create)
	protected.Get("/wedding-profile", weddingHandler.Get)
	protected.Put("/wedding-profile/:id", weddingHandler.Update)

	for _, p := range plugins {
		p.RegisterRoutes(protected, db, cfg)
	}
}
