package validate

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Var checks a single value against a tag such as "gte=0".
func (cv *CustomValidator) Var(field interface{}, tag string) error {
	return cv.validator.Var(field, tag)
}
