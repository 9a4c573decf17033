// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "pulse/internal/domain/errors"
)

// RequestValidator validates bound request DTOs against their struct tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New constructs the echo validator.
func New() *RequestValidator {
	return &RequestValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Tag failures translate to the domain
// validation error so the error middleware renders a 400 envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
