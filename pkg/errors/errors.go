package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmailPasswordRequired = errors.New("email and password are required")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrMissingRefreshToken   = errors.New("refresh token is required")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")

	ErrCategoryNotFound = errors.New("category not found")
	ErrDishNotFound     = errors.New("dish not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// ErrOperationFailed is the deliberately generic failure surfaced to
	// clients when the cause must not leak (store errors, unresolvable
	// references during order placement).
	ErrOperationFailed = errors.New("an error occurred")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
