package handlers

import "offerhub/internal/models"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6,bcryptmax,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRequest is the body of POST /users and PUT /users/:id.
type UserRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	DNI                  string `json:"dni" validate:"omitempty,max=255"`
	DNIType              string `json:"dni_type" validate:"omitempty,max=255"`
	Password             string `json:"password" validate:"required,min=6,bcryptmax,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (r UserRequest) toUser() *models.User {
	return &models.User{
		Name:     r.Name,
		Email:    r.Email,
		DNI:      r.DNI,
		DNIType:  r.DNIType,
		Password: r.Password,
	}
}

// OfferRequest is the body of POST /offers and PUT /offers/:id.
type OfferRequest struct {
	Name   string   `json:"name" validate:"required,max=255"`
	Status string   `json:"status" validate:"required,oneof=active inactive"`
	Users  []string `json:"users" validate:"required,min=1,dive,required"`
}
