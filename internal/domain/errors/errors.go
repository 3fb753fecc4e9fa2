package errors

import (
	"net/http"

	"kirana/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrOwnerNotRegistered = NewBaseError(
		http.StatusNotFound,
		"OWNER_NOT_REGISTERED",
		"No owner account is registered yet",
		"",
	)

	ErrOwnerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"OWNER_ALREADY_EXISTS",
		"An owner account is already registered",
		"",
	)

	ErrCustomerNotRegistered = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_REGISTERED",
		"No customer account is registered yet",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Mobile number or password is incorrect",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"The verification code is invalid",
		"",
	)

	ErrAdminCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ADMIN_CREDENTIALS",
		"Admin email or password is incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process the password",
		"",
	)

	// Shop and catalog errors
	ErrShopNotSetUp = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_SET_UP",
		"The shop has not been set up yet",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"The product does not exist",
		"",
	)

	// Cart and order errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"The cart is empty",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"The order does not exist",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"The order status is not one of the known stages",
		"",
	)

	// Rating errors
	ErrRatingExists = NewBaseError(
		http.StatusConflict,
		"RATING_EXISTS",
		"This order has already been rated",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The resource does not exist",
		"",
	)
)

// NewStoreWriteError wraps a blob store failure as an internal AppError.
func NewStoreWriteError(err error, message string) error {
	return ErrInternalError.WithDetails(err.Error()).WrapMessage(message)
}
