package ownabletest

import (
	"bytes"
	"encoding/binary"
	"sort"
	"sync/atomic"

	"github.com/iov-one/ownable"
)

var addressCounter int64

// NewAddress returns a new, unique address. Generation is deterministic
// within a process run, so tests produce stable sets of distinct
// identities without managing keys.
func NewAddress() ownable.Address {
	n := atomic.AddInt64(&addressCounter, 1)
	raw := make([]byte, 8, 8+7)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return ownable.NewAddress(append(raw, "address"...))
}

// NewAddresses returns n new unique addresses, sorted ascending so they
// can be fed directly into an owner list installation.
func NewAddresses(n int) []ownable.Address {
	addrs := make([]ownable.Address, n)
	for i := range addrs {
		addrs[i] = NewAddress()
	}
	SortAddresses(addrs)
	return addrs
}

// SortAddresses orders given addresses ascending, in place.
func SortAddresses(addrs []ownable.Address) {
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i], addrs[j]) < 0
	})
}
