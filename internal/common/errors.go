package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Test case errors
	ErrTestCaseNotFound = errors.New("test case not found")
	ErrTestCaseExists   = errors.New("test case already exists")

	// Judge errors
	ErrUnknownBackend = errors.New("unknown judgment backend")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
