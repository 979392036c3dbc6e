package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignupInput is the signup form after binding. Password bounds follow the
// account policy: 8 to 12 characters inclusive.
type SignupInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=12"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// LoginInput is the login form after binding.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

var validate = validator.New()

// ValidationError carries per-field messages for re-rendering the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// checkInput runs struct validation and converts validator errors into a
// *ValidationError the handlers can unpack field by field.
func checkInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min", "max":
		return "Password must be between 8 and 12 characters."
	case "eqfield":
		return "Passwords do not match."
	default:
		return fmt.Sprintf("Invalid value for %s.", strings.ToLower(fe.Field()))
	}
}
