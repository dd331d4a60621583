package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"survey-backend/domain/core/valueobjects"
	apperrors "survey-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so messages match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Money is checked as its decimal text.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(valueobjects.Money); ok {
			return m.String()
		}
		return nil
	}, valueobjects.Money{})
	_ = v.RegisterValidation("money", validateMoney)
	return v
}

func validateMoney(fl validator.FieldLevel) bool {
	m, err := valueobjects.NewMoney(fl.Field().String())
	return err == nil && m.Storable()
}

// ValidateStruct validates a struct based on its validation tags. Failures
// come back as a VALIDATION AppError with one entry per offending field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(err.Error())
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := fields[e.Field()]; !seen {
			fields[e.Field()] = formatFieldError(e)
		}
	}
	return apperrors.NewFieldValidationError(fields)
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "json":
		return fmt.Sprintf("%s must be valid JSON", field)
	case "money":
		return fmt.Sprintf("%s must have at most %d decimal places and %d integer digits",
			field, valueobjects.MoneyScale, valueobjects.MoneyIntegerDigits)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
