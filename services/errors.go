package services

import "errors"

// Common errors
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrValidation   = errors.New("validation error")
	ErrInternal     = errors.New("internal server error")
)
