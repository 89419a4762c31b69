package validator

import (
	"fmt"
	"strings"

	"campusbook/pkg/logger"
	"campusbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	messages := make([]string, len(v))
	for i, err := range v {
		messages[i] = err.Message
	}
	return strings.Join(messages, "; ")
}

type EventValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEventValidator(log *logger.Logger) *EventValidator {
	return &EventValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks a complete event draft. Callers merge updates into the
// stored event before calling this, so partial updates are validated
// against the full document.
func (v *EventValidator) Validate(event *model.Event) error {
	if err := v.validate.Struct(event); err != nil {
		return v.translate(err)
	}
	return nil
}

func (v *EventValidator) ValidateUpdate(updates *model.EventUpdate) error {
	if err := v.validate.Struct(updates); err != nil {
		return v.translate(err)
	}
	return nil
}

func (v *EventValidator) translate(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "unknown", Message: err.Error()}}
	}

	translated := make(ValidationErrors, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translated = append(translated, ValidationError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
		})
	}
	return translated
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
	case "mongodb":
		return fmt.Sprintf("%s must be a valid object ID", fieldErr.Field())
	default:
		return fmt.Sprintf("%s is invalid", fieldErr.Field())
	}
}
