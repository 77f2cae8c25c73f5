package ownerset

import (
	"github.com/iov-one/ownable"
	"github.com/iov-one/ownable/errors"
)

// MaxOwners bounds the number of entries a single account may hold. The
// bound is enforced by the callers managing the set, not by Insert itself.
const MaxOwners = 32

// Sentinel returns the reserved marker address that denotes both the head
// and the tail of every list. It is never a valid entry. Callers removing
// the first entry of a set pass the sentinel as the predecessor.
func Sentinel() ownable.Address {
	s := make(ownable.Address, ownable.AddressLength)
	s[ownable.AddressLength-1] = 0x01
	return s
}

var sentinel = Sentinel()

// ValidEntry returns an error unless given address can be stored as a set
// entry: proper size, not the zero address, not the sentinel.
func ValidEntry(id ownable.Address) error {
	if err := id.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidEntry, "%s", err)
	}
	if id.IsZero() {
		return errors.Wrap(ErrInvalidEntry, "zero address")
	}
	if id.Equals(sentinel) {
		return errors.Wrap(ErrInvalidEntry, "sentinel address")
	}
	return nil
}

// Set provides access to per account linked lists of addresses, all stored
// under a common name prefix. The zero value is not usable, use NewSet.
//
// Every entry key maps to the address of its successor. The sentinel entry
// maps to the first element (or to the sentinel itself when the set is
// empty). A missing sentinel entry means the account was never initialized.
type Set struct {
	prefix []byte
}

// NewSet returns a set accessor storing its data under given name.
func NewSet(name string) Set {
	return Set{prefix: []byte(name + ":")}
}

// key is unambiguous because both the account handle and the entry are
// fixed width addresses.
func (s Set) key(account, id ownable.Address) []byte {
	out := make([]byte, 0, len(s.prefix)+len(account)+len(id))
	out = append(out, s.prefix...)
	out = append(out, account...)
	return append(out, id...)
}

// Init creates an empty list for the account. It must be called exactly
// once before any entry is inserted.
func (s Set) Init(db ownable.KVStore, account ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	k := s.key(account, sentinel)
	if db.Has(k) {
		return errors.Wrapf(ErrAlreadyInitialized, "account %s", account)
	}
	db.Set(k, sentinel)
	return nil
}

// Initialized returns true if Init was called for the account and the set
// was not cleared since.
func (s Set) Initialized(db ownable.KVStore, account ownable.Address) bool {
	if account.Validate() != nil {
		return false
	}
	return db.Has(s.key(account, sentinel))
}

// Insert pushes the entry at the head of the list.
func (s Set) Insert(db ownable.KVStore, account ownable.Address, id ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := ValidEntry(id); err != nil {
		return err
	}
	head := db.Get(s.key(account, sentinel))
	if head == nil {
		return errors.Wrapf(ErrUninitialized, "account %s", account)
	}
	if db.Has(s.key(account, id)) {
		return errors.Wrapf(ErrDuplicateEntry, "entry %s", id)
	}
	db.Set(s.key(account, id), head)
	db.Set(s.key(account, sentinel), id)
	return nil
}

// Remove unlinks the entry, given the entry directly preceding it in
// traversal order. Use the sentinel as predecessor to remove the first
// entry. Requiring the predecessor keeps removal O(1); the caller can
// always obtain it from an enumeration.
func (s Set) Remove(db ownable.KVStore, account ownable.Address, prev, id ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := ValidEntry(id); err != nil {
		return err
	}
	cur := db.Get(s.key(account, prev))
	if cur == nil || !ownable.Address(cur).Equals(id) {
		return errors.Wrapf(ErrWrongPredecessor, "entry %s after %s", id, prev)
	}
	next := db.Get(s.key(account, id))
	if next == nil {
		// a predecessor pointing at a missing entry means the list
		// structure was corrupted outside of this package
		return errors.Wrapf(errors.ErrHuman, "broken link at %s", id)
	}
	db.Set(s.key(account, prev), next)
	db.Delete(s.key(account, id))
	return nil
}

// Contains returns true if the entry is a member of the account's set.
// The zero address and the sentinel are never members.
func (s Set) Contains(db ownable.KVStore, account ownable.Address, id ownable.Address) bool {
	if account.Validate() != nil || ValidEntry(id) != nil {
		return false
	}
	return db.Has(s.key(account, id))
}

// EnumeratePage returns up to max entries in traversal order, starting
// after the cursor. A nil cursor (or the sentinel) starts from the head.
// The returned cursor is nil once the set is exhausted, otherwise it is
// the last returned entry and can be fed back in to continue.
//
// An account that was never initialized enumerates as empty.
func (s Set) EnumeratePage(db ownable.KVStore, account ownable.Address, cursor ownable.Address, max int) ([]ownable.Address, ownable.Address, error) {
	if err := account.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "account")
	}
	if max <= 0 {
		return nil, nil, errors.Wrapf(errors.ErrInput, "page size %d", max)
	}
	start := cursor
	if start == nil {
		start = sentinel
	}
	cur := db.Get(s.key(account, start))
	if cur == nil {
		if start.Equals(sentinel) {
			return nil, nil, nil
		}
		return nil, nil, errors.Wrapf(ErrInvalidEntry, "cursor %s", cursor)
	}

	var items []ownable.Address
	for len(items) < max && !ownable.Address(cur).Equals(sentinel) {
		item := ownable.Address(cur).Clone()
		items = append(items, item)
		cur = db.Get(s.key(account, item))
	}

	if ownable.Address(cur).Equals(sentinel) {
		return items, nil, nil
	}
	return items, items[len(items)-1], nil
}

// Clear removes every entry including the sentinel, returning the account
// to the uninitialized state. Clearing an uninitialized account is a noop.
func (s Set) Clear(db ownable.KVStore, account ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	cur := db.Get(s.key(account, sentinel))
	for cur != nil && !ownable.Address(cur).Equals(sentinel) {
		next := db.Get(s.key(account, cur))
		db.Delete(s.key(account, cur))
		cur = next
	}
	db.Delete(s.key(account, sentinel))
	return nil
}
