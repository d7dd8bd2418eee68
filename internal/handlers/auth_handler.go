package handlers

import (
	"offerhub/internal/middleware"
	"offerhub/internal/models"
	"offerhub/internal/services"
	"offerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validate,
	}
}

// RegisterRoutes registers /login and /register on public and the
// current-user route behind authRequired.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
	router.Get("/user", authRequired, h.HandleCurrentUser)
}

// HandleRegister creates an account and returns its first token.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, err, "Could not register user")
	}

	user := &models.User{Name: req.Name, Email: req.Email, Password: req.Password}
	token, err := h.authService.Register(user)
	if err != nil {
		return respondError(c, err, "Could not register user")
	}

	log.Info().Str("user_id", user.ID).Msg("User registered")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// HandleLogin verifies credentials and issues a new token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, err, "Could not log in")
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Could not log in")
	}
	return c.JSON(fiber.Map{"token": token})
}

// HandleCurrentUser returns the user owning the bearer token.
func (h *AuthHandler) HandleCurrentUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthenticated."})
	}
	return c.JSON(user)
}
