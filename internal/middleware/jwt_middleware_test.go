package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"offerhub/internal/middleware"
	"offerhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	token string
	user  *models.User
}

func (s stubAuthenticator) Authenticate(token string) (*models.User, error) {
	if token != s.token {
		return nil, errors.New("invalid token")
	}
	return s.user, nil
}

func TestAuthRequired(t *testing.T) {
	auth := stubAuthenticator{token: "good", user: &models.User{ID: "u-1", Name: "Alice"}}

	reached := false
	app := fiber.New()
	app.Get("/me", middleware.AuthRequired(auth), func(c *fiber.Ctx) error {
		reached = true
		return c.SendString(middleware.CurrentUser(c).ID)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status == http.StatusOK, reached)
		})
	}
}
