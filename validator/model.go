package validator

import (
	amino "github.com/tendermint/go-amino"

	"github.com/iov-one/ownable"
	"github.com/iov-one/ownable/errors"
	"github.com/iov-one/ownable/ownerset"
)

// cdc serializes persisted records. Amino is reflection based so the
// stored layout follows the struct declaration.
var cdc = amino.NewCodec()

// Policy is the per account scalar state: the minimal number of distinct
// owner approvals required and a cache of the live owner set size.
//
// A zero Threshold means the account is not configured. Whenever the
// Threshold is set, OwnerCount must be able to satisfy it.
type Policy struct {
	Threshold  uint32
	OwnerCount uint32
}

// Validate returns an error if the policy violates any state invariant.
func (p *Policy) Validate() error {
	if p.Threshold > 0 && p.OwnerCount < p.Threshold {
		return errors.Wrapf(errors.ErrState,
			"owner count %d below threshold %d", p.OwnerCount, p.Threshold)
	}
	if p.OwnerCount > ownerset.MaxOwners {
		return errors.Wrapf(errors.ErrState,
			"owner count %d above capacity", p.OwnerCount)
	}
	return nil
}

// PolicyBucket provides access to the per account policy records.
type PolicyBucket struct {
	prefix []byte
}

// NewPolicyBucket returns a bucket with the default name.
func NewPolicyBucket() PolicyBucket {
	return PolicyBucket{prefix: []byte("policy:")}
}

func (b PolicyBucket) key(account ownable.Address) []byte {
	return append(append([]byte{}, b.prefix...), account...)
}

// Get returns the policy stored for the account. A missing record reads
// as the zero policy, meaning not configured.
func (b PolicyBucket) Get(db ownable.KVStore, account ownable.Address) (*Policy, error) {
	if err := account.Validate(); err != nil {
		return nil, errors.Wrap(err, "account")
	}
	raw := db.Get(b.key(account))
	if len(raw) == 0 {
		return &Policy{}, nil
	}
	var p Policy
	if err := cdc.UnmarshalBinaryBare(raw, &p); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal policy")
	}
	return &p, nil
}

// Save persists the policy record for the account.
func (b PolicyBucket) Save(db ownable.KVStore, account ownable.Address, p *Policy) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	raw, err := cdc.MarshalBinaryBare(p)
	if err != nil {
		return errors.Wrap(err, "cannot marshal policy")
	}
	db.Set(b.key(account), raw)
	return nil
}

// Delete removes the policy record. Deleting an absent record is a noop.
func (b PolicyBucket) Delete(db ownable.KVStore, account ownable.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	db.Delete(b.key(account))
	return nil
}
