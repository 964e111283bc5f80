package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/config"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	resolver *identity.Resolver,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	tanukiHandler *handlers.TanukiHandler,
	ratingHandler *handlers.RatingHandler,
	commentHandler *handlers.CommentHandler,
	deviceHandler *handlers.DeviceHandler,
	placeHandler *handlers.PlaceHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Auth — public
	// Auth-specific rate limit: 10 req/min per IP (stricter)
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
	auth.Post("/guest", authHandler.Guest)

	// Protected routes (JWT required) - apply middleware to individual routes
	// This prevents JWT middleware from affecting public routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Catalog — reads are public; the optional token lets signed-in
	// callers see their own rating on aggregate responses
	api.Get("/tanukis", tanukiHandler.List)
	api.Get("/tanukis/:id", tanukiHandler.Get)
	api.Get("/tanukis/:id/ratings", middleware.JWTOptional(cfg), ratingHandler.Aggregate)
	api.Get("/tanukis/:id/comments", commentHandler.List)

	// Catalog — writes (JWT required, guest tokens included)
	api.Post("/tanukis", middleware.JWTProtected(cfg), tanukiHandler.Create)
	api.Put("/tanukis/:id", middleware.JWTProtected(cfg), tanukiHandler.Update)
	api.Delete("/tanukis/:id", middleware.JWTProtected(cfg), tanukiHandler.Delete)
	api.Post("/tanukis/:id/ratings", middleware.JWTProtected(cfg), ratingHandler.Submit)
	api.Put("/tanukis/:id/ratings", middleware.JWTProtected(cfg), ratingHandler.Amend)
	api.Post("/tanukis/:id/comments", middleware.JWTProtected(cfg), commentHandler.Post)

	// Device profile (nickname + new-item bookkeeping)
	api.Get("/device/nickname", deviceHandler.GetNickname)
	api.Put("/device/nickname", deviceHandler.SetNickname)
	api.Get("/notifications/new", deviceHandler.NewTanukis)

	// Place search proxy
	api.Get("/places/search", placeHandler.Search)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(resolver))
	admin.Delete("/tanukis/:id", tanukiHandler.SoftDelete)
	admin.Delete("/tanukis/:id/comments/:comment_id", commentHandler.Remove)
}
