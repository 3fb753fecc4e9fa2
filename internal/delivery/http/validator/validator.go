// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "kirana/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator installed on the Echo server. Struct tags
// on the usecase input DTOs drive the rules.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs the tag rules and folds failures into the shared validation
// error so the HTTP error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
