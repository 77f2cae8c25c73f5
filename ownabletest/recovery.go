package ownabletest

import "github.com/iov-one/ownable"

// Recoverer is a scripted signer recovery implementation. Regardless of
// digest and blob content it returns configured signers list or error.
type Recoverer struct {
	// Signers is returned by every successful call.
	Signers []ownable.Address

	// Err if set is returned by every call.
	Err error

	// CallCount is incremented on every call.
	CallCount int
}

// RecoverSigners returns the scripted result.
func (r *Recoverer) RecoverSigners(digest, blob []byte, count int) ([]ownable.Address, error) {
	r.CallCount++
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Signers, nil
}
