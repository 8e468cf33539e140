// Package apperr defines the error taxonomy shared by services and
// controllers. Services wrap these sentinels with fmt.Errorf("...: %w"),
// controllers match them with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation covers malformed input: empty item lists, non-positive
	// quantities, unknown status values, duplicate registrations.
	ErrValidation = errors.New("validation failed")

	// ErrItemUnavailable means a referenced menu item is either missing or
	// marked unavailable. The two cases are deliberately not distinguished.
	ErrItemUnavailable = errors.New("menu item not found or unavailable")

	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the requester is known but not allowed.
	ErrForbidden = errors.New("forbidden")
)
