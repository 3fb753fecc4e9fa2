// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kirana/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterOwnerInput defines the data required to register the store owner.
type RegisterOwnerInput struct {
	FullName string `json:"fullName" validate:"required"`
	Mobile   string `json:"mobile" validate:"required,min=10"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// LoginOwnerInput defines the data for an owner login. Either the demo OTP
// or the registration password verifies the login; both fields are optional
// but one must be supplied.
type LoginOwnerInput struct {
	Mobile   string `json:"mobile" validate:"required"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// LoginCustomerInput defines the data for the customer OTP login. A profile
// is created on first login.
type LoginCustomerInput struct {
	Mobile string `json:"mobile" validate:"required,min=10"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	OTP    string `json:"otp" validate:"required"`
}

// LoginAdminInput defines the data for the hardcoded admin credential check.
type LoginAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput returns the signed session token for a role surface.
type SessionOutput struct {
	Token string      `json:"token"`
	Role  entity.Role `json:"role"`
}

// OwnerSessionOutput pairs a session with the owner profile it belongs to.
type OwnerSessionOutput struct {
	Session SessionOutput        `json:"session"`
	Owner   *entity.OwnerProfile `json:"owner"`
}

// CustomerSessionOutput pairs a session with the customer profile.
type CustomerSessionOutput struct {
	Session  SessionOutput           `json:"session"`
	Customer *entity.CustomerProfile `json:"customer"`
}

// AccountUsecase defines the login and registration operations for the three
// role surfaces. Authentication is demo-grade on purpose: any verification
// code of four or more digits passes, and the admin check compares fixed
// literals from config.
type AccountUsecase interface {
	RegisterOwner(ctx context.Context, input *RegisterOwnerInput) (*OwnerSessionOutput, error)
	LoginOwner(ctx context.Context, input *LoginOwnerInput) (*OwnerSessionOutput, error)
	LoginCustomer(ctx context.Context, input *LoginCustomerInput) (*CustomerSessionOutput, error)
	LoginAdmin(ctx context.Context, input *LoginAdminInput) (*SessionOutput, error)
}
