package validator

import (
	"errors"
	"fmt"
	"strings"

	"trainbook/pkg/logger"
	"trainbook/pkg/model"

	"github.com/go-playground/validator/v10"
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
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Messages joins the human-readable messages on one line.
func (v ValidationErrors) Messages() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into the map carried by an API error response.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("civil_date", validateCivilDate); err != nil {
		log.Fatal("Failed to register 'civil_date' validator", "error", err)
	}
	if err := v.RegisterValidation("clock_time", validateClockTime); err != nil {
		log.Fatal("Failed to register 'clock_time' validator", "error", err)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateCivilDate(fl validator.FieldLevel) bool {
	_, err := model.ParseDate(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := model.ParseTimeOfDay(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// Validate checks field presence and formats. It does not look at the schedule.
func (v *BookingValidator) Validate(candidate *model.CandidateBooking) error {
	if err := v.validate.Struct(candidate); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "civil_date":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case "clock_time":
			message = fmt.Sprintf("%s must be a time in HH:MM 24-hour format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
