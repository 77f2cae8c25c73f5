package validator

import (
	"bytes"
	"sort"

	"github.com/iov-one/ownable"
	"github.com/iov-one/ownable/errors"
)

// Capability identifies a kind of module behavior a host can query for.
type Capability uint32

// CapabilityValidator is the only capability this module provides:
// rendering authorization decisions for pending operations.
const CapabilityValidator Capability = 1

// Supports reports whether this module implements given capability.
func (v *Validator) Supports(c Capability) bool {
	return c == CapabilityValidator
}

// ValidateOperation decides whether the approval blob authorizes the
// operation digest under the account's stored policy.
//
// An account without a configured policy yields false without an error.
// A blob the recovery primitive cannot interpret is a hard error. Anything
// else - unknown signers, repeated signers, too few approvals - is an
// ordinary negative result.
func (v *Validator) ValidateOperation(db ownable.KVStore, account ownable.Address, digest, blob []byte) (bool, error) {
	pol, err := v.policies.Get(db, account)
	if err != nil {
		return false, err
	}
	if pol.Threshold == 0 {
		return false, nil
	}

	signers, err := v.rec.RecoverSigners(digest, blob, int(pol.Threshold))
	if err != nil {
		return false, errors.Wrap(err, "recover signers")
	}
	signers = sortAndDeduplicate(signers)

	var matches uint32
	for _, signer := range signers {
		if v.owners.Contains(db, account, signer) {
			matches++
		}
	}
	return matches >= pol.Threshold, nil
}

// ValidateExternalSignature decides whether the blob is a valid approval
// of the digest on behalf of the caller, using the caller's own stored
// policy. This is the probe interface hosts use outside of operation
// execution; the decision procedure is the stateful one.
func (v *Validator) ValidateExternalSignature(db ownable.KVStore, caller ownable.Address, digest, blob []byte) (bool, error) {
	return v.ValidateOperation(db, caller, digest, blob)
}

// ValidateAgainstExplicitPolicy runs the same decision procedure against
// a caller supplied policy instead of a stored one. Since the caller may
// be probing an arbitrary ad-hoc policy, a malformed policy (unsorted or
// repeated owners, zero threshold) is a negative result rather than an
// error. A blob the recovery primitive cannot interpret still fails hard.
func (v *Validator) ValidateAgainstExplicitPolicy(digest, blob []byte, threshold uint32, owners []ownable.Address) (bool, error) {
	if threshold == 0 {
		return false, nil
	}
	if !sortedAndUnique(owners) {
		return false, nil
	}

	signers, err := v.rec.RecoverSigners(digest, blob, int(threshold))
	if err != nil {
		return false, errors.Wrap(err, "recover signers")
	}
	signers = sortAndDeduplicate(signers)

	var matches uint32
	for _, signer := range signers {
		// the owner list is sorted, so use a binary search
		i := sort.Search(len(owners), func(i int) bool {
			return bytes.Compare(owners[i], signer) >= 0
		})
		if i < len(owners) && owners[i].Equals(signer) {
			matches++
		}
	}
	return matches >= threshold, nil
}

// sortAndDeduplicate orders the signers ascending and drops repeats, so
// that no approver can be counted twice even if the blob encodes the same
// identity more than once. Sorting first makes deduplication a linear
// scan.
func sortAndDeduplicate(signers []ownable.Address) []ownable.Address {
	if len(signers) < 2 {
		return signers
	}
	sort.Slice(signers, func(i, j int) bool {
		return bytes.Compare(signers[i], signers[j]) < 0
	})
	unique := signers[:1]
	for _, s := range signers[1:] {
		if !s.Equals(unique[len(unique)-1]) {
			unique = append(unique, s)
		}
	}
	return unique
}
