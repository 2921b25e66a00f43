package dto

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/catalog-service/pkg/util/errorutil"
)

const validationMessage = "Validation errors occurred"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks request DTO tags and reports every violated field at once.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errorutil.NewValidationError(validationMessage, nil)
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return errorutil.NewValidationError(validationMessage, fields)
}

// MalformedBody reports a body that could not be decoded.
func MalformedBody(err error) error {
	return errorutil.NewValidationError(validationMessage, map[string]string{"body": "Malformed request body: " + err.Error()})
}

func fieldMessage(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "max":
		return label + " must be at most " + fe.Param() + " characters"
	case "email":
		return label + " must be a valid email address"
	case "gte", "min":
		return label + " must be at least " + fe.Param()
	case "lte":
		return label + " must be at most " + fe.Param()
	default:
		return label + " is invalid"
	}
}

// humanize turns "effectiveStart" into "Effective start".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
