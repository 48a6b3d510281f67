package domain

import "errors"

// Store-level errors shared by the repositories. Services translate these into
// their own business errors before they reach the HTTP boundary.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrAdminExists    = errors.New("admin user already exists")

	// ErrStaleState signals that a conditional write found the row in a
	// different state than the caller observed. The caller re-reads to
	// classify the failure.
	ErrStaleState = errors.New("state changed underneath conditional write")
)
