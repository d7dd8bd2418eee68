package handlers

import (
	"errors"

	"offerhub/internal/models"
	"offerhub/internal/services"
	"offerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// OfferHandler handles HTTP requests for offers.
type OfferHandler struct {
	service  *services.OfferService
	validate *validation.Validator
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(service *services.OfferService, validate *validation.Validator) *OfferHandler {
	return &OfferHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the offer routes behind authRequired.
func (h *OfferHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	offerRoutes := router.Group("/offers", authRequired)
	offerRoutes.Get("/", h.HandleGetOffers)
	offerRoutes.Post("/", h.HandleCreateOffer)
	offerRoutes.Get("/:id", h.HandleGetOfferByID)
	offerRoutes.Put("/:id", h.HandleUpdateOffer)
	offerRoutes.Delete("/:id", h.HandleDeleteOffer)
}

// HandleGetOffers lists offers with their users.
func (h *OfferHandler) HandleGetOffers(c *fiber.Ctx) error {
	q := listQuery(c)
	offers, total, err := h.service.GetAllOffers(q)
	if err != nil {
		return respondError(c, err, "Could not retrieve offers")
	}

	resources := make([]models.OfferResource, 0, len(offers))
	for i := range offers {
		resources = append(resources, models.NewOfferResource(&offers[i]))
	}
	return c.JSON(collection(resources, q, total))
}

// HandleGetOfferByID retrieves a single offer with its users.
func (h *OfferHandler) HandleGetOfferByID(c *fiber.Ctx) error {
	id := c.Params("id")
	offer, err := h.service.GetOfferByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "Offer", id)
		}
		return respondError(c, err, "Could not retrieve offer")
	}
	return c.JSON(models.NewOfferResource(offer))
}

// HandleCreateOffer creates an offer attached to the given users.
func (h *OfferHandler) HandleCreateOffer(c *fiber.Ctx) error {
	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, err, "Could not create offer")
	}

	offer := &models.Offer{Name: req.Name, Status: req.Status}
	if err := h.service.CreateOffer(offer, req.Users); err != nil {
		return respondError(c, err, "Could not create offer")
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewOfferResource(offer))
}

// HandleUpdateOffer replaces an offer's attributes and its exact user set.
func (h *OfferHandler) HandleUpdateOffer(c *fiber.Ctx) error {
	id := c.Params("id")
	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, err, "Could not update offer")
	}

	offer, err := h.service.UpdateOffer(id, &models.Offer{Name: req.Name, Status: req.Status}, req.Users)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "Offer", id)
		}
		return respondError(c, err, "Could not update offer")
	}
	return c.JSON(models.NewOfferResource(offer))
}

// HandleDeleteOffer deletes an offer and its user links.
func (h *OfferHandler) HandleDeleteOffer(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteOffer(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "Offer", id)
		}
		return respondError(c, err, "Could not delete offer")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
