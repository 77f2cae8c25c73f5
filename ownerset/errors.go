package ownerset

import "github.com/iov-one/ownable/errors"

// ownerset takes the 1100-1104 error code range
var (
	// ErrAlreadyInitialized is returned when initializing a set that
	// already has a sentinel entry.
	ErrAlreadyInitialized = errors.Register(1100, "set already initialized")

	// ErrUninitialized is returned when mutating a set that was never
	// initialized.
	ErrUninitialized = errors.Register(1101, "set not initialized")

	// ErrInvalidEntry is returned when an address cannot be stored as a
	// set entry (wrong size, the zero address or the sentinel).
	ErrInvalidEntry = errors.Register(1102, "invalid set entry")

	// ErrDuplicateEntry is returned when inserting an entry that is
	// already a member.
	ErrDuplicateEntry = errors.Register(1103, "duplicate set entry")

	// ErrWrongPredecessor is returned when removing an entry that is not
	// present or not directly preceded by the given entry.
	ErrWrongPredecessor = errors.Register(1104, "entry not preceded by given predecessor")
)
