package server

import (
	"fmt"
	"net/http"
)

// ErrBadRequestBody indicates the request body could not be decoded
type ErrBadRequestBody struct {
	Cause error
}

func (e *ErrBadRequestBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrBadRequestBody) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Cause error
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Cause)
}

func (e *ErrValidation) Unwrap() error {
	return e.Cause
}

// ErrRateLimited indicates the client exceeded its request budget
type ErrRateLimited struct{}

func (e *ErrRateLimited) Error() string {
	return "rate limit exceeded"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrBadRequestBody, *ErrValidation:
		return http.StatusBadRequest
	case *ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
