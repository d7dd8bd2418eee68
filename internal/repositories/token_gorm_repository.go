package repositories

import (
	"fmt"
	"time"

	"offerhub/internal/models"

	"gorm.io/gorm"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{db: db}
}

func (r *GORMTokenRepository) Create(token *models.AccessToken) error {
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to create access token: %w", translateError(err))
	}
	return nil
}

func (r *GORMTokenRepository) GetByID(id string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := r.db.First(&token, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("access token %s: %w", id, translateError(err))
	}
	return &token, nil
}

// Touch records the last time a token authenticated a request.
func (r *GORMTokenRepository) Touch(id string, at time.Time) error {
	res := r.db.Model(&models.AccessToken{}).Where("id = ?", id).Update("last_used_at", at)
	if res.Error != nil {
		return fmt.Errorf("failed to touch access token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("access token %s: %w", id, ErrNotFound)
	}
	return nil
}
