package handlers

import (
	"errors"

	"offerhub/internal/services"
	"offerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validation.Validator) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the user routes behind authRequired.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	userRoutes := router.Group("/users", authRequired)
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists users, optionally filtered and paginated.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	q := listQuery(c)
	users, total, err := h.service.GetAllUsers(q)
	if err != nil {
		return respondError(c, err, "Could not retrieve users")
	}
	return c.JSON(collection(users, q, total))
}

// HandleGetUserByID retrieves a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.service.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "User", id)
		}
		return respondError(c, err, "Could not retrieve user")
	}
	return c.JSON(user)
}

// HandleCreateUser creates a user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, err, "Could not create user")
	}

	user := req.toUser()
	if err := h.service.CreateUser(user); err != nil {
		return respondError(c, err, "Could not create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser replaces a user's attributes. The body is validated before
// the user is looked up.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, err, "Could not update user")
	}

	user, err := h.service.UpdateUser(id, req.toUser())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "User", id)
		}
		return respondError(c, err, "Could not update user")
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user and detaches it from its offers.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "User", id)
		}
		return respondError(c, err, "Could not delete user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

