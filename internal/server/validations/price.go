package validations

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const priceValidatorTag string = "price"

var priceRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)

func priceValidator(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return priceRegex.MatchString(input)
}
