package validations

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
)

func NewValidator(logger *slog.Logger) *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation(priceValidatorTag, priceValidator); err != nil {
		logger.Error("Failed to register price validator", "error", err)
		panic(err)
	}
	return validate
}
