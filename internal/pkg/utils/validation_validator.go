package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("answer", validateAnswer)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateAnswer accepts the questionnaire answer domain: "yes", "no" or
// empty (don't know / skipped). Anything else is rejected at the edge so
// downstream rules only ever see the three-valued domain.
func validateAnswer(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "yes" || value == "no" || value == ""
}
