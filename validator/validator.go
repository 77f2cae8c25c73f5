package validator

import (
	"bytes"

	"github.com/iov-one/ownable"
	"github.com/iov-one/ownable/errors"
	"github.com/iov-one/ownable/ownerset"
)

const (
	// ModuleName identifies this module to hosts that track installed
	// modules by name.
	ModuleName = "ownable-validator"

	// ModuleVersion follows semver.
	ModuleVersion = "1.0.0"
)

// Recoverer turns an opaque approval blob into the list of count claimed
// signer addresses, or fails when the blob cannot be interpreted. The blob
// structure is known only to the implementation; this package never
// inspects it.
type Recoverer interface {
	RecoverSigners(digest []byte, blob []byte, count int) ([]ownable.Address, error)
}

// Validator manages per account authorization policies and renders
// authorization decisions against them. It is the only writer of the
// owner set and the policy records.
//
// The host environment is expected to serialize operations per account.
// In an environment without that guarantee, add per account mutual
// exclusion around each call.
type Validator struct {
	owners   ownerset.Set
	policies PolicyBucket
	rec      Recoverer
	strict   bool
}

// NewValidator returns a validator using the given recovery primitive.
func NewValidator(rec Recoverer) *Validator {
	return &Validator{
		owners:   ownerset.NewSet("owners"),
		policies: NewPolicyBucket(),
		rec:      rec,
	}
}

// NewStrictValidator returns a validator that additionally guards
// RemoveOwner: the account must be initialized and the removal must not
// drop the owner count below the threshold. The default validator keeps
// RemoveOwner unguarded for compatibility with the original design.
func NewStrictValidator(rec Recoverer) *Validator {
	v := NewValidator(rec)
	v.strict = true
	return v
}

// Install configures the authorization policy of a fresh account. The
// owner list must be strictly sorted ascending with no repeats, contain
// only valid non-zero addresses, hold at most MaxOwners entries and at
// least threshold of them. All checks happen before any write, so a
// failed install leaves no state behind.
func (v *Validator) Install(db ownable.KVStore, account ownable.Address, threshold uint32, owners []ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if !sortedAndUnique(owners) {
		return errors.Wrap(ErrNotSortedAndUnique, "owners")
	}
	if threshold == 0 {
		return errors.Wrap(ErrThresholdNotSet, "install")
	}
	if uint32(len(owners)) < threshold {
		return errors.Wrapf(ErrInvalidThreshold,
			"%d owners cannot satisfy threshold %d", len(owners), threshold)
	}
	if len(owners) > ownerset.MaxOwners {
		return errors.Wrapf(ErrMaxOwnersReached, "%d owners", len(owners))
	}
	for i, id := range owners {
		if err := ownerset.ValidEntry(id); err != nil {
			return errors.Wrapf(ErrInvalidOwner, "owner %d: %s", i, id)
		}
	}

	// the set refuses reinitialization, and it is the first write, so
	// installing over a configured account changes nothing
	if err := v.owners.Init(db, account); err != nil {
		return err
	}
	pol := &Policy{Threshold: threshold, OwnerCount: uint32(len(owners))}
	if err := v.policies.Save(db, account, pol); err != nil {
		return err
	}
	for _, id := range owners {
		if err := v.owners.Insert(db, account, id); err != nil {
			return err
		}
	}
	return nil
}

// Uninstall removes the account's owner set and policy record. It is
// idempotent and succeeds even for an account that was never installed.
func (v *Validator) Uninstall(db ownable.KVStore, account ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := v.owners.Clear(db, account); err != nil {
		return err
	}
	return v.policies.Delete(db, account)
}

// IsInitialized returns true if the account has a configured policy.
func (v *Validator) IsInitialized(db ownable.KVStore, account ownable.Address) bool {
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return false
	}
	return pol.Threshold != 0
}

// SetThreshold overwrites the threshold of an installed account. The new
// value must be nonzero and satisfiable by the current owner count.
func (v *Validator) SetThreshold(db ownable.KVStore, account ownable.Address, threshold uint32) error {
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return err
	}
	if pol.Threshold == 0 {
		return errors.Wrapf(ErrNotInitialized, "account %s", account)
	}
	if threshold == 0 {
		return errors.Wrap(ErrInvalidThreshold, "zero threshold")
	}
	if pol.OwnerCount < threshold {
		return errors.Wrapf(ErrInvalidThreshold,
			"%d owners cannot satisfy threshold %d", pol.OwnerCount, threshold)
	}
	pol.Threshold = threshold
	return v.policies.Save(db, account, pol)
}

// AddOwner registers one more owner for an installed account.
func (v *Validator) AddOwner(db ownable.KVStore, account ownable.Address, id ownable.Address) error {
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return err
	}
	if pol.Threshold == 0 {
		return errors.Wrapf(ErrNotInitialized, "account %s", account)
	}
	if err := ownerset.ValidEntry(id); err != nil {
		return errors.Wrapf(ErrInvalidOwner, "%s", id)
	}
	if pol.OwnerCount >= ownerset.MaxOwners {
		return errors.Wrapf(ErrMaxOwnersReached, "account %s", account)
	}
	if err := v.owners.Insert(db, account, id); err != nil {
		return err
	}
	pol.OwnerCount++
	return v.policies.Save(db, account, pol)
}

// RemoveOwner unregisters an owner, given its predecessor in the set's
// traversal order (the sentinel for the first entry).
//
// By inherited design this does not require the account to be initialized
// and does not verify that the remaining owner count still satisfies the
// threshold. A validator created with NewStrictValidator enforces both.
func (v *Validator) RemoveOwner(db ownable.KVStore, account ownable.Address, prev, id ownable.Address) error {
	if v.strict {
		pol, err := v.policies.Get(db, account)
		if err != nil {
			return err
		}
		if pol.Threshold == 0 {
			return errors.Wrapf(ErrNotInitialized, "account %s", account)
		}
		if pol.OwnerCount-1 < pol.Threshold {
			return errors.Wrapf(ErrInvalidThreshold,
				"removal drops owner count below threshold %d", pol.Threshold)
		}
	}
	if err := v.owners.Remove(db, account, prev, id); err != nil {
		return err
	}
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return err
	}
	// a successful removal implies at least one registered owner
	pol.OwnerCount--
	return v.policies.Save(db, account, pol)
}

// GetOwners returns all registered owners of the account in traversal
// order. The set is capacity bounded, so a single page covers it. An
// account without owners returns an empty list.
func (v *Validator) GetOwners(db ownable.KVStore, account ownable.Address) ([]ownable.Address, error) {
	items, _, err := v.owners.EnumeratePage(db, account, nil, ownerset.MaxOwners)
	return items, err
}

// Threshold returns the configured threshold, zero when not installed.
func (v *Validator) Threshold(db ownable.KVStore, account ownable.Address) (uint32, error) {
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return 0, err
	}
	return pol.Threshold, nil
}

// OwnerCount returns the cached owner set size.
func (v *Validator) OwnerCount(db ownable.KVStore, account ownable.Address) (uint32, error) {
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return 0, err
	}
	return pol.OwnerCount, nil
}

// sortedAndUnique returns true if addresses are strictly ascending.
func sortedAndUnique(addrs []ownable.Address) bool {
	for i := 1; i < len(addrs); i++ {
		if bytes.Compare(addrs[i-1], addrs[i]) >= 0 {
			return false
		}
	}
	return true
}
