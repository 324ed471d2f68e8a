package ctdf

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by the names callers actually send
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		_, err := ParseClockTime(fl.Field().String())
		return err == nil
	})

	return v
}

// validationErrorFrom turns the first validator failure into a ValidationError.
func validationErrorFrom(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fieldError := validationErrors[0]
	value := ""
	if reflected := reflect.Indirect(reflect.ValueOf(fieldError.Value())); reflected.IsValid() {
		value = fmt.Sprint(reflected.Interface())
	}

	return &ValidationError{
		Field:  fieldError.Field(),
		Value:  value,
		Reason: validationReason(fieldError),
	}
}

func validationReason(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "clocktime":
		return "must be a time in HH:MM format"
	case "boolean":
		return "must be true or false"
	case "number":
		return "must be a whole number"
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldError.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fieldError.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldError.Tag())
	}
}
