package solidgate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
	countryPattern  = regexp.MustCompile(`^[A-Z]{3}$`)
	pageLanguages   = []string{"da", "de", "el", "en", "es", "fi", "fr", "it", "nl", "no", "pl", "pt", "ro", "sv", "uk"}
	validate        = newValidator()
)

func validateOrder(fields orderFields, variant any) error {
	if err := validate.Struct(fields); err != nil {
		return normalizeValidationError(err)
	}
	if err := validate.Struct(variant); err != nil {
		return normalizeValidationError(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "currency", func(fl validator.FieldLevel) bool {
		return currencyPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "country3", func(fl validator.FieldLevel) bool {
		return countryPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "language", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, lang := range pageLanguages {
			if lang == value {
				return true
			}
		}
		return false
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func normalizeValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	first := validationErrs[0]
	return &ValidationError{
		Field:   jsonPath(first),
		Message: validationMessage(first),
	}
}

func jsonPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if path == "" {
		return fe.Field()
	}
	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.Map || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("cannot have more than %s entries", fe.Param())
		}
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be an absolute URL"
	case "currency":
		return "must be an uppercase 3-letter ISO-4217 code"
	case "country3":
		return "must be an uppercase ISO-3166 alpha-3 code"
	case "language":
		return fmt.Sprintf("must be one of [%s]", strings.Join(pageLanguages, ", "))
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}
