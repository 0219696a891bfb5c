package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/travelease/callcenter/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	UseJSONFieldNames(validate)
}

// UseJSONFieldNames makes v report fields by their json or form names.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonTagName)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	return name
}

// ValidateStruct validates s against its `validate` tags and returns a
// validation AppError describing every failing field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errors.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}
	return errors.NewValidationError(strings.Join(messages, "; "))
}

// BindingErrorMessage turns a gin binding failure into a client message.
func BindingErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return getFieldErrorMessage(validationErrors[0])
	}
	return "Invalid request body"
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
