package services

import "errors"

// Error taxonomy shared by all services. Handlers branch on these with
// errors.Is and map them to the matching HTTP responses.
var (
	// ErrNotFound means a referenced user, group or post does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation means the input was rejected before any write happened.
	ErrValidation = errors.New("invalid input")
	// ErrForbidden means the caller is not allowed to perform the action.
	ErrForbidden = errors.New("not allowed")
)
