package services

import (
	"errors"
	"fmt"

	"offerhub/internal/models"
	"offerhub/internal/repositories"
	"offerhub/internal/validation"
)

// UserService handles business logic related to users.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllUsers retrieves users matching query and the total before pagination.
func (s *UserService) GetAllUsers(query models.ListQuery) ([]models.User, int64, error) {
	return s.repo.GetAll(query)
}

// GetUserByID retrieves a single user by its ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser stores a new user. user.Password holds the plain password and is
// replaced by its hash.
func (s *UserService) CreateUser(user *models.User) error {
	if err := ensureEmailAvailable(s.repo, user.Email, ""); err != nil {
		return err
	}
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := s.repo.Create(user); err != nil {
		return duplicateEmail(err)
	}
	publish(s.publisher, EventUserCreated, user.ID, nil)
	return nil
}

// UpdateUser replaces name, email, national-ID fields and password of the
// user identified by id.
func (s *UserService) UpdateUser(id string, changes *models.User) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := ensureEmailAvailable(s.repo, changes.Email, user.ID); err != nil {
		return nil, err
	}
	hashed, err := hashPassword(changes.Password)
	if err != nil {
		return nil, err
	}

	user.Name = changes.Name
	user.Email = changes.Email
	user.DNI = changes.DNI
	user.DNIType = changes.DNIType
	user.Password = hashed

	if err := s.repo.Update(user); err != nil {
		return nil, duplicateEmail(err)
	}
	publish(s.publisher, EventUserUpdated, user.ID, nil)
	return user, nil
}

// DeleteUser removes a user, detaching it from every offer.
func (s *UserService) DeleteUser(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publish(s.publisher, EventUserDeleted, id, nil)
	return nil
}

// ensureEmailAvailable fails with a validation error when email belongs to a
// user other than exceptID.
func ensureEmailAvailable(repo repositories.UserRepository, email, exceptID string) error {
	existing, err := repo.GetByEmail(email)
	switch {
	case err == nil:
		if existing.ID != exceptID {
			return validation.Single("email", msgEmailTaken)
		}
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check email: %w", err)
	}
}

func duplicateEmail(err error) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return validation.Single("email", msgEmailTaken)
	}
	return err
}
