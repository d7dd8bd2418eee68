package services_test

import (
	"time"

	"offerhub/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(query models.ListQuery) ([]models.User, int64, error) {
	args := m.Called(query)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CountByIDs(ids []string) (int64, error) {
	args := m.Called(ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTokenRepository is a mock implementation of repositories.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(token *models.AccessToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByID(id string) (*models.AccessToken, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccessToken), args.Error(1)
}

func (m *MockTokenRepository) Touch(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

// MockOfferRepository is a mock implementation of repositories.OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) GetAll(query models.ListQuery) ([]models.Offer, int64, error) {
	args := m.Called(query)
	return args.Get(0).([]models.Offer), args.Get(1).(int64), args.Error(2)
}

func (m *MockOfferRepository) GetByID(id string) (*models.Offer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) Create(offer *models.Offer, userIDs []string) error {
	args := m.Called(offer, userIDs)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(offer *models.Offer, userIDs []string) error {
	args := m.Called(offer, userIDs)
	return args.Error(0)
}

func (m *MockOfferRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, payload interface{}) error {
	args := m.Called(routingKey, payload)
	return args.Error(0)
}
