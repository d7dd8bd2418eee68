package services

import (
	"errors"

	"offerhub/internal/repositories"
)

var (
	// ErrNotFound is returned when the addressed user or offer does not exist.
	ErrNotFound = repositories.ErrNotFound
	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token cannot be resolved to a user.
	ErrInvalidToken = errors.New("invalid token")
)

const (
	msgEmailTaken   = "The email has already been taken."
	msgUsersInvalid = "The selected users is invalid."
)
