package services

import "errors"

// The four failure kinds a service can report. Controllers map them onto
// HTTP statuses; anything outside these kinds is an internal error.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}
