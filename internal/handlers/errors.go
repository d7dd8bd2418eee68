package handlers

import (
	"errors"
	"fmt"
	"strings"

	"offerhub/internal/models"
	"offerhub/internal/services"
	"offerhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// badRequest answers an unparsable body. A JSON value of the wrong type on a
// known field is reported as a validation failure of that field.
func badRequest(c *fiber.Ctx, err error) error {
	if verrs := validation.FromTypeError(err); verrs != nil {
		return respondError(c, verrs, "Invalid request body")
	}
	log.Debug().Err(err).Str("path", c.Path()).Msg("Error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func notFound(c *fiber.Ctx, resource, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": fmt.Sprintf("%s with ID %s not found", resource, id),
	})
}

// respondError writes validation failures as 422 and anything unexpected as
// 500 with the given message.
func respondError(c *fiber.Ctx, err error, message string) error {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": validation.Message,
			"errors":  verrs.Fields,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "These credentials do not match our records.",
		})
	case errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated.",
		})
	}

	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
	})
}

const maxPerPage = 100

// listQuery reads ?search=, ?page= and ?per_page=. per_page is capped at
// maxPerPage.
func listQuery(c *fiber.Ctx) models.ListQuery {
	q := models.ListQuery{
		Search:  strings.TrimSpace(c.Query("search")),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 0),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 0 {
		q.PerPage = 0
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	return q
}

func collection[T any](items []T, q models.ListQuery, total int64) models.Collection[T] {
	if items == nil {
		items = []T{}
	}
	out := models.Collection[T]{Data: items}
	if q.PerPage > 0 {
		out.Meta = &models.PageMeta{CurrentPage: q.Page, PerPage: q.PerPage, Total: total}
	}
	return out
}
