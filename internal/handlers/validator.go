package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator plugs go-playground struct validation into echo so the
// request DTO tags (required fields, boundary ranges, category sets) are
// checked before a handler runs.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator the server registers on its echo
// instance.
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks the tags on a bound request body. The raw
// validator.ValidationErrors flow out so the error handler can render
// per-field details.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
