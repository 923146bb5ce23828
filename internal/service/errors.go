// Package service implements the business logic sitting between the HTTP
// handlers and the repositories: input validation, ownership checks,
// password verification.
package service

import "errors"

var (
	// ErrBadCredentials is returned for every failed login. It deliberately
	// does not distinguish an unknown username from a wrong password.
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrUserExists is returned when a signup collides with an existing username.
	ErrUserExists = errors.New("user already exists")

	// ErrChildNotFound is returned when a referenced child does not exist.
	ErrChildNotFound = errors.New("child not found")

	// ErrForbidden is returned when the caller does not own the referenced
	// user or child.
	ErrForbidden = errors.New("forbidden")
)
