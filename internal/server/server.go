package server

import (
	"errors"

	"offerhub/internal/config"
	"offerhub/internal/database"
	"offerhub/internal/handlers"
	"offerhub/internal/middleware"
	"offerhub/internal/repositories"
	"offerhub/internal/services"
	"offerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil, in which case no domain events are emitted.
func NewApp(db *gorm.DB, cfg *config.Config, publisher services.EventPublisher) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	tokenRepo := repositories.NewGORMTokenRepository(db)
	offerRepo := repositories.NewGORMOfferRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, tokenRepo, publisher, cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo, publisher)
	offerService := services.NewOfferService(offerRepo, userRepo, publisher)

	// --- Handlers ---
	validate := validation.New()
	authHandler := handlers.NewAuthHandler(authService, validate)
	userHandler := handlers.NewUserHandler(userService, validate)
	offerHandler := handlers.NewOfferHandler(offerService, validate)
	healthHandler := handlers.NewHealthHandler(func() error { return database.Ping(db) })

	app := fiber.New(fiber.Config{
		AppName:      "offerhub",
		ErrorHandler: errorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${status} ${method} ${path} ${latency} ${error}\n",
		Output: log.Logger,
	}))

	// --- Routes ---
	authRequired := middleware.AuthRequired(authService)
	healthHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app, authRequired)
	userHandler.RegisterRoutes(app, authRequired)
	offerHandler.RegisterRoutes(app, authRequired)

	return app
}

// errorHandler renders errors that escape handlers, such as unknown routes
// and recovered panics, as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("Unhandled error")
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
