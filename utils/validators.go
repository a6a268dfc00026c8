package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"notesvc/apperror"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the struct's validate tags and turns the first
// failure into a client-facing validation error.
func ValidateStruct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.ErrValidation.WithInternal(err)
	}
	return apperror.ErrValidation.WithMessage(describe(strings.ToLower(verrs[0].Field()), verrs[0]))
}

// ValidateVar checks a single value against tag and names it field in the
// error message.
func ValidateVar(field string, v any, tag string) error {
	err := Validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.ErrValidation.WithInternal(err)
	}
	return apperror.ErrValidation.WithMessage(describe(field, verrs[0]))
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s exceeds the maximum of %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
