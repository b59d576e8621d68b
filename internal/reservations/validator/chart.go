package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
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

// ChartRequest asks for a frequency chart over one categorical attribute.
type ChartRequest struct {
	Attribute string `json:"attribute" validate:"required,filterable_attribute"`
}

type ChartValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewChartValidator(log *logger.Logger) *ChartValidator {
	v := validator.New()

	if err := v.RegisterValidation("filterable_attribute", validateFilterableAttribute); err != nil {
		log.Fatal("Failed to register 'filterable_attribute' validator", "error", err)
	}

	log.Debug("Chart validator initialized successfully")

	return &ChartValidator{
		validate: v,
		logger:   log,
	}
}

func validateFilterableAttribute(fl validator.FieldLevel) bool {
	return model.Attribute(strings.TrimSpace(fl.Field().String())).IsFilterable()
}

func (v *ChartValidator) ValidateChart(req *ChartRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ChartValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", strings.ToLower(err.Field()))
		case "filterable_attribute":
			names := make([]string, 0, len(model.FilterAttributes))
			for _, a := range model.FilterAttributes {
				names = append(names, string(a))
			}
			message = fmt.Sprintf("attribute must be one of: %s", strings.Join(names, ", "))
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   strings.ToLower(err.Field()),
			Message: message,
		})
	}

	return validationErrors
}
