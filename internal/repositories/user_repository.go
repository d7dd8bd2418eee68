package repositories

import "offerhub/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(query models.ListQuery) ([]models.User, int64, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CountByIDs(ids []string) (int64, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}
