package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"bizclean/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type RecordValidator struct {
	validate *validator.Validate
}

func NewRecordValidator() *RecordValidator {
	return &RecordValidator{
		validate: validator.New(),
	}
}

// Validate enforces payload sanity limits on a raw record. Empty fields are
// valid: the transforms define empty-input behavior themselves.
func (v *RecordValidator) Validate(rec *model.RawRecord) error {
	if err := v.validate.Struct(rec); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: translateMessage(err),
		})
	}

	return validationErrors
}

func translateMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
