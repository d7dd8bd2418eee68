package models

import (
	"math"
	"time"
)

// OfferUserResource is the trimmed user shape nested inside offers.
type OfferUserResource struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	DNI     string `json:"dni"`
	DNIType string `json:"dni_type"`
}

// OfferResource is the JSON representation of an offer.
type OfferResource struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Status    string              `json:"status"`
	Users     []OfferUserResource `json:"users"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewOfferResource(offer *Offer) OfferResource {
	users := make([]OfferUserResource, 0, len(offer.Users))
	for _, u := range offer.Users {
		users = append(users, OfferUserResource{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			DNI:     u.DNI,
			DNIType: u.DNIType,
		})
	}
	return OfferResource{
		ID:        offer.ID,
		Name:      offer.Name,
		Status:    offer.Status,
		Users:     users,
		CreatedAt: offer.CreatedAt,
		UpdatedAt: offer.UpdatedAt,
	}
}

// PageMeta describes a paginated collection.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

// Collection wraps list responses as {"data": [...]}.
type Collection[T any] struct {
	Data []T      `json:"data"`
	Meta *PageMeta `json:"meta,omitempty"`
}

// ListQuery carries the optional filters accepted by list endpoints.
// PerPage of zero returns every row.
type ListQuery struct {
	Search  string
	Page    int
	PerPage int
}

// Offset is the number of rows before the requested page. Pages too far out
// to address are clamped to math.MaxInt32, which yields an empty page.
func (q ListQuery) Offset() int {
	if q.Page < 1 || q.PerPage <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt32/q.PerPage {
		return math.MaxInt32
	}
	return (q.Page - 1) * q.PerPage
}
