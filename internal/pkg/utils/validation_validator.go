package utils

import (
	"labrequest-service/internal/pkg/wizard"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sample_category", validateSampleCategory)
	validate.RegisterValidation("priority", validatePriority)
	validate.RegisterValidation("plant", validatePlant)
	validate.RegisterValidation("polymer_type", validatePolymerType)
	validate.RegisterValidation("sample_form", validateSampleForm)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSampleCategory(fl validator.FieldLevel) bool {
	return wizard.Category(fl.Field().String()).Valid()
}

func validatePriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == wizard.PriorityNormal || value == wizard.PriorityUrgent
}

func validatePlant(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || wizard.ValidPlant(value)
}

func validatePolymerType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || wizard.ValidPolymerType(value)
}

func validateSampleForm(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || wizard.ValidSampleForm(value)
}
