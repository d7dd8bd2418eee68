package repositories

import (
	"fmt"

	"offerhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves users matching the query together with the unpaginated total.
func (r *GORMUserRepository) GetAll(query models.ListQuery) ([]models.User, int64, error) {
	search := searchScope(query.Search, "name", "email")

	var total int64
	if err := r.db.Model(&models.User{}).Scopes(search).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := r.db.Scopes(search, paginateScope(query)).Order("created_at, id").Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, total, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user with ID %s: %w", id, translateError(err))
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, translateError(err))
	}
	return &user, nil
}

// CountByIDs reports how many of the given ids belong to existing users.
func (r *GORMUserRepository) CountByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by id: %w", err)
	}
	return count, nil
}

// Create inserts a user. Tokens attached to the user are inserted in the
// same transaction.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translateError(err))
	}
	return nil
}

// Update overwrites the mutable fields of an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Model(user).
		Select("name", "email", "dni", "dni_type", "password").
		Updates(user)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a user together with its offer links and access tokens.
func (r *GORMUserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.OfferUser{}).Error; err != nil {
			return fmt.Errorf("failed to detach user %s from offers: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.AccessToken{}).Error; err != nil {
			return fmt.Errorf("failed to revoke tokens of user %s: %w", id, err)
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
