package services

import "errors"

// Domain errors returned by the services. Handlers map these to HTTP statuses
// with errors.Is; anything outside this set is treated as an internal error
// and surfaced to clients as a generic message.
var (
	// ErrInvalidInput covers missing or malformed request fields (400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateEmail is returned when registering an email that exists (409).
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a password mismatch (401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when no account matches the email (404).
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreNotFound is returned when an owner has no store yet (404).
	ErrStoreNotFound = errors.New("store not found")
	// ErrInvalidOwner is returned when an admin attaches a store to an ID
	// that is not an existing user with the owner role (400).
	ErrInvalidOwner = errors.New("invalid or non-owner user ID")
	// ErrAlreadyOwnsStore is returned when an owner tries to create a second
	// store through the self-service path (409).
	ErrAlreadyOwnsStore = errors.New("owner already has a store")
)
