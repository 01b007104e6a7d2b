// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports failures as domain validation errors keyed by request field name.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report the name the client sent rather than the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"form", "query", "json"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseGender(fl.Field().String())

		return ok
	})

	_ = v.RegisterValidation("quantity_op", func(fl validator.FieldLevel) bool {
		return entity.QuantityOperation(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate checks a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if _, seen := fields[fieldErr.Field()]; !seen {
			fields[fieldErr.Field()] = message(fieldErr)
		}
	}

	return domainerrors.NewValidationError(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "gender":
		return fmt.Sprintf("%q is not a valid choice.", fe.Value())
	case "quantity_op":
		return `Operation must be "+" or "-".`
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
