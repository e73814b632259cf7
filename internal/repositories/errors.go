package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services translate
// these into domain-level errors; handlers never see them directly.
var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates a unique-index violation (e.g. users.email).
	ErrDuplicate = errors.New("duplicate record")
	// ErrOwnerHasStore indicates the owner already has a store and the
	// exclusive-create path refused to add another.
	ErrOwnerHasStore = errors.New("owner already has a store")
)
