package validation_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"offerhub/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name                 string   `json:"name" validate:"required,max=10"`
	Email                string   `json:"email" validate:"required,email"`
	DNIType              string   `json:"dni_type" validate:"omitempty,max=3"`
	Password             string   `json:"password" validate:"required,min=6,bcryptmax,eqfield=PasswordConfirmation"`
	PasswordConfirmation string   `json:"password_confirmation"`
	Status               string   `json:"status" validate:"required,oneof=active inactive"`
	Tags                 []string `json:"tags" validate:"required,min=1,dive,required"`
}

func valid() signup {
	return signup{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
		Status:               "active",
		Tags:                 []string{"a"},
	}
}

func validationErrors(t *testing.T, err error) *validation.Errors {
	t.Helper()
	var verrs *validation.Errors
	require.True(t, errors.As(err, &verrs), "expected *validation.Errors, got %v", err)
	return verrs
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, validation.New().Struct(valid()))
}

func TestStruct_FieldMessages(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		mutate  func(s *signup)
		field   string
		message string
	}{
		{"missing name", func(s *signup) { s.Name = "" }, "name", "The name field is required."},
		{"long name", func(s *signup) { s.Name = "abcdefghijk" }, "name", "The name must not be greater than 10 characters."},
		{"bad email", func(s *signup) { s.Email = "nope" }, "email", "The email must be a valid email address."},
		{"long dni type", func(s *signup) { s.DNIType = "PASSPORT" }, "dni_type", "The dni type must not be greater than 3 characters."},
		{"short password", func(s *signup) { s.Password, s.PasswordConfirmation = "abc", "abc" }, "password", "The password must be at least 6 characters."},
		{"password over 72 bytes", func(s *signup) { s.Password = strings.Repeat("a", 73); s.PasswordConfirmation = s.Password }, "password", "The password must not be greater than 72 bytes."},
		{"multibyte password over 72 bytes", func(s *signup) { s.Password = strings.Repeat("é", 40); s.PasswordConfirmation = s.Password }, "password", "The password must not be greater than 72 bytes."},
		{"confirmation mismatch", func(s *signup) { s.PasswordConfirmation = "other1" }, "password", "The password confirmation does not match."},
		{"unknown status", func(s *signup) { s.Status = "archived" }, "status", "The selected status is invalid."},
		{"nil tags", func(s *signup) { s.Tags = nil }, "tags", "The tags field is required."},
		{"empty tags", func(s *signup) { s.Tags = []string{} }, "tags", "The tags field must have at least 1 items."},
		{"blank tag", func(s *signup) { s.Tags = []string{""} }, "tags", "The tags field is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			verrs := validationErrors(t, v.Struct(s))
			assert.Len(t, verrs.Fields, 1)
			assert.Equal(t, []string{tt.message}, verrs.Fields[tt.field])
		})
	}
}

func TestErrors_Error(t *testing.T) {
	e := validation.NewErrors()
	assert.True(t, e.Empty())

	e.Add("users", "The selected users is invalid.")
	e.Add("email", "The email has already been taken.")
	assert.False(t, e.Empty())
	assert.Equal(t, "validation failed on email, users", e.Error())

	single := validation.Single("users", "x")
	assert.Equal(t, []string{"x"}, single.Fields["users"])
}

func TestStruct_PasswordAtByteLimit(t *testing.T) {
	s := valid()
	s.Password = strings.Repeat("a", validation.BcryptMaxBytes)
	s.PasswordConfirmation = s.Password
	assert.NoError(t, validation.New().Struct(s))
}

func TestFromTypeError(t *testing.T) {
	var s signup

	err := json.Unmarshal([]byte(`{"tags":"abc"}`), &s)
	require.Error(t, err)
	verrs := validation.FromTypeError(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"The tags must be an array."}, verrs.Fields["tags"])

	err = json.Unmarshal([]byte(`{"dni_type":5}`), &s)
	require.Error(t, err)
	verrs = validation.FromTypeError(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"The dni type must be a string."}, verrs.Fields["dni_type"])

	err = json.Unmarshal([]byte(`{"name":`), &s)
	require.Error(t, err)
	assert.Nil(t, validation.FromTypeError(err))
}
