package services

import (
	"errors"
	"fmt"
	"time"

	"offerhub/internal/models"
	"offerhub/internal/repositories"
	"offerhub/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const tokenName = "auth-token"

// AuthService handles registration, login and bearer token resolution.
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	publisher EventPublisher
	jwtSecret []byte
	tokenTTL  time.Duration // zero disables expiry
}

// NewAuthService creates a new AuthService. publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, publisher EventPublisher, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		publisher: publisher,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates the user with a hashed password and returns its first
// token. The user row and the token row are written together.
func (s *AuthService) Register(user *models.User) (string, error) {
	if err := ensureEmailAvailable(s.userRepo, user.Email, ""); err != nil {
		return "", err
	}

	hashed, err := hashPassword(user.Password)
	if err != nil {
		return "", err
	}
	user.Password = hashed
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	token, signed, err := s.issueToken(user.ID)
	if err != nil {
		return "", err
	}
	user.Tokens = []models.AccessToken{*token}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return "", validation.Single("email", msgEmailTaken)
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	user.Tokens = nil

	publish(s.publisher, EventUserRegistered, user.ID, map[string]interface{}{"email": user.Email})
	return signed, nil
}

// Login verifies the credentials and issues a new token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, signed, err := s.issueToken(user.ID)
	if err != nil {
		return "", err
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return signed, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	stored, err := s.tokenRepo.GetByID(claims.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: token revoked", ErrInvalidToken)
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if stored.UserID != claims.Subject {
		return nil, fmt.Errorf("%w: subject mismatch", ErrInvalidToken)
	}

	user, err := s.userRepo.GetByID(claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrInvalidToken)
		}
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}

	if err := s.tokenRepo.Touch(stored.ID, time.Now()); err != nil {
		log.Warn().Err(err).Str("token_id", stored.ID).Msg("Failed to record token usage")
	}
	return user, nil
}

func (s *AuthService) issueToken(userID string) (*models.AccessToken, string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:       uuid.New().String(),
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AccessToken{ID: claims.ID, UserID: userID, Name: tokenName}, signed, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
