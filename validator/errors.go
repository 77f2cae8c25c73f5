package validator

import "github.com/iov-one/ownable/errors"

// validator takes the 1110-1115 error code range
var (
	// ErrNotSortedAndUnique is returned when an owner list is not
	// strictly ascending or contains repeats.
	ErrNotSortedAndUnique = errors.Register(1110, "owners not sorted and unique")

	// ErrThresholdNotSet is returned when installing with a zero
	// threshold.
	ErrThresholdNotSet = errors.Register(1111, "threshold not set")

	// ErrInvalidThreshold is returned when a threshold cannot be
	// satisfied by the owner count.
	ErrInvalidThreshold = errors.Register(1112, "invalid threshold")

	// ErrMaxOwnersReached is returned when an operation would grow the
	// owner set beyond its capacity.
	ErrMaxOwnersReached = errors.Register(1113, "max owners reached")

	// ErrInvalidOwner is returned for owner addresses that can never be
	// valid identities.
	ErrInvalidOwner = errors.Register(1114, "invalid owner")

	// ErrNotInitialized is returned when managing a policy that was not
	// installed.
	ErrNotInitialized = errors.Register(1115, "account not initialized")
)
