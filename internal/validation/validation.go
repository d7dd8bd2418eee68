// Package validation checks request bodies against their struct tags and
// renders failures as a per-field error map.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message is the top-level message of every validation failure.
const Message = "The given data was invalid."

// BcryptMaxBytes is the longest input bcrypt accepts.
const BcryptMaxBytes = 72

// Errors maps JSON field names to human readable failures.
type Errors struct {
	Fields map[string][]string
}

func NewErrors() *Errors {
	return &Errors{Fields: make(map[string][]string)}
}

// Single builds an Errors value holding one message.
func Single(field, msg string) *Errors {
	e := NewErrors()
	e.Add(field, msg)
	return e
}

func (e *Errors) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *Errors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *Errors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed on %s", strings.Join(keys, ", "))
}

// Validator wraps validator.Validate so field names are reported using
// their json tags.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// bcryptmax limits bytes rather than characters.
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= BcryptMaxBytes
	})
	return &Validator{validate: v}
}

// Struct validates s. It returns *Errors when a constraint fails, nil when
// the value is valid, and any other error untouched.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := NewErrors()
	for _, fe := range fieldErrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		out.Add(field, message(field, fe))
	}
	return out
}

func message(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", label)
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("The %s field must have at least %s items.", label, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s characters.", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", label)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "bcryptmax":
		return fmt.Sprintf("The %s must not be greater than %d bytes.", label, BcryptMaxBytes)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

// FromTypeError turns a JSON type mismatch on a named field into a field
// error. It returns nil when err is not such a mismatch.
func FromTypeError(err error) *Errors {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" || typeErr.Type == nil {
		return nil
	}
	field := typeErr.Field
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[:i]
	}
	label := strings.ReplaceAll(field, "_", " ")

	switch typeErr.Type.Kind() {
	case reflect.Slice, reflect.Array:
		return Single(field, fmt.Sprintf("The %s must be an array.", label))
	case reflect.String:
		return Single(field, fmt.Sprintf("The %s must be a string.", label))
	default:
		return Single(field, fmt.Sprintf("The %s field is invalid.", label))
	}
}
