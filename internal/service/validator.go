package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/slug"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports json field names and understands the slug tag
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register slug validation: %v", err))
	}

	return v
}

// FieldErrors flattens validation failures into a field -> message map.
// It returns nil when err carries no field-level detail.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = fieldMessage(fe)
			}
		}
		return fields
	}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		return map[string]string{verr.Field: verr.Message}
	}

	var aerr *apperrors.AlreadyExistsError
	if errors.As(err, &aerr) && aerr.Field != "" {
		return map[string]string{aerr.Field: aerr.Error()}
	}

	return nil
}

// IsValidationFailure reports whether err was produced by request validation
func IsValidationFailure(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs) || apperrors.IsValidation(err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "url", "http_url":
		return "Enter a valid URL."
	case "email":
		return "Enter a valid email address."
	case "slug":
		return "Enter a valid slug consisting of lowercase letters, numbers or hyphens."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
