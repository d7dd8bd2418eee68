package repositories

import (
	"time"

	"offerhub/internal/models"
)

// TokenRepository defines the interface for access token storage.
type TokenRepository interface {
	Create(token *models.AccessToken) error
	GetByID(id string) (*models.AccessToken, error)
	Touch(id string, at time.Time) error
}
