package validator

import (
	"testing"

	"github.com/iov-one/ownable"
	"github.com/iov-one/ownable/errors"
	"github.com/iov-one/ownable/ownabletest"
	"github.com/iov-one/ownable/ownerset"
	"github.com/iov-one/ownable/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	owners := ownabletest.NewAddresses(3)
	reversed := []ownable.Address{owners[2], owners[1], owners[0]}
	withDuplicate := []ownable.Address{owners[0], owners[0], owners[1]}

	withZero := ownabletest.NewAddresses(2)
	withZero = append([]ownable.Address{make(ownable.Address, ownable.AddressLength)}, withZero...)

	testcases := []struct {
		name      string
		threshold uint32
		owners    []ownable.Address
		wantErr   *errors.Error
	}{
		{
			name:      "valid use case",
			threshold: 2,
			owners:    owners,
		},
		{
			name:      "exact threshold",
			threshold: 3,
			owners:    owners,
		},
		{
			name:      "unsorted owners",
			threshold: 2,
			owners:    reversed,
			wantErr:   ErrNotSortedAndUnique,
		},
		{
			name:      "duplicated owners",
			threshold: 2,
			owners:    withDuplicate,
			wantErr:   ErrNotSortedAndUnique,
		},
		{
			name:      "zero threshold",
			threshold: 0,
			owners:    owners,
			wantErr:   ErrThresholdNotSet,
		},
		{
			name:      "threshold above owner count",
			threshold: 4,
			owners:    owners,
			wantErr:   ErrInvalidThreshold,
		},
		{
			name:      "no owners",
			threshold: 1,
			owners:    nil,
			wantErr:   ErrInvalidThreshold,
		},
		{
			name:      "too many owners",
			threshold: 2,
			owners:    ownabletest.NewAddresses(ownerset.MaxOwners + 1),
			wantErr:   ErrMaxOwnersReached,
		},
		{
			name:      "zero address owner",
			threshold: 2,
			owners:    withZero,
			wantErr:   ErrInvalidOwner,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			db := store.MemStore()
			v := NewValidator(&ownabletest.Recoverer{})
			account := ownabletest.NewAddress()

			err := v.Install(db, account, tc.threshold, tc.owners)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)

				// a failed install must leave no state behind
				assert.False(t, v.IsInitialized(db, account))
				got, err := v.GetOwners(db, account)
				require.NoError(t, err)
				assert.Len(t, got, 0)
				return
			}
			require.NoError(t, err)
			assert.True(t, v.IsInitialized(db, account))

			threshold, err := v.Threshold(db, account)
			require.NoError(t, err)
			assert.Equal(t, tc.threshold, threshold)

			count, err := v.OwnerCount(db, account)
			require.NoError(t, err)
			assert.Equal(t, uint32(len(tc.owners)), count)

			got, err := v.GetOwners(db, account)
			require.NoError(t, err)
			require.Len(t, got, len(tc.owners))
			// head insertion reverses the install order
			for i, id := range tc.owners {
				assert.True(t, id.Equals(got[len(got)-1-i]))
			}
		})
	}
}

func TestInstallTwice(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	owners := ownabletest.NewAddresses(3)
	require.NoError(t, v.Install(db, account, 2, owners))

	err := v.Install(db, account, 1, ownabletest.NewAddresses(1))
	assert.True(t, ownerset.ErrAlreadyInitialized.Is(err), "unexpected error: %+v", err)

	// the original policy must be untouched
	threshold, err := v.Threshold(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), threshold)
}

func TestUninstallIsIdempotent(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	// uninstalling a fresh account is fine
	require.NoError(t, v.Uninstall(db, account))

	require.NoError(t, v.Install(db, account, 2, ownabletest.NewAddresses(3)))
	require.NoError(t, v.Uninstall(db, account))
	require.NoError(t, v.Uninstall(db, account))

	assert.False(t, v.IsInitialized(db, account))
	threshold, err := v.Threshold(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), threshold)
	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), count)
	got, err := v.GetOwners(db, account)
	require.NoError(t, err)
	assert.Len(t, got, 0)

	// an uninstalled account can be installed again
	require.NoError(t, v.Install(db, account, 1, ownabletest.NewAddresses(1)))
}

func TestSetThreshold(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	err := v.SetThreshold(db, account, 1)
	assert.True(t, ErrNotInitialized.Is(err), "unexpected error: %+v", err)

	require.NoError(t, v.Install(db, account, 2, ownabletest.NewAddresses(3)))

	err = v.SetThreshold(db, account, 0)
	assert.True(t, ErrInvalidThreshold.Is(err), "unexpected error: %+v", err)

	err = v.SetThreshold(db, account, 4)
	assert.True(t, ErrInvalidThreshold.Is(err), "unexpected error: %+v", err)

	require.NoError(t, v.SetThreshold(db, account, 3))
	threshold, err := v.Threshold(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), threshold)

	// owner count must be untouched
	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), count)
}

func TestAddOwner(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	err := v.AddOwner(db, account, ownabletest.NewAddress())
	assert.True(t, ErrNotInitialized.Is(err), "unexpected error: %+v", err)

	owners := ownabletest.NewAddresses(3)
	require.NoError(t, v.Install(db, account, 2, owners))

	err = v.AddOwner(db, account, make(ownable.Address, ownable.AddressLength))
	assert.True(t, ErrInvalidOwner.Is(err), "unexpected error: %+v", err)

	err = v.AddOwner(db, account, owners[0])
	assert.True(t, ownerset.ErrDuplicateEntry.Is(err), "unexpected error: %+v", err)
	// a failed add must not change the count
	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), count)

	extra := ownabletest.NewAddress()
	require.NoError(t, v.AddOwner(db, account, extra))
	count, err = v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), count)
	got, err := v.GetOwners(db, account)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.True(t, extra.Equals(got[0]))
}

func TestOwnerCapacity(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	require.NoError(t, v.Install(db, account, 2, ownabletest.NewAddresses(ownerset.MaxOwners)))

	err := v.AddOwner(db, account, ownabletest.NewAddress())
	assert.True(t, ErrMaxOwnersReached.Is(err), "unexpected error: %+v", err)

	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(ownerset.MaxOwners), count)
}

func TestRemoveOwner(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	owners := ownabletest.NewAddresses(3)
	require.NoError(t, v.Install(db, account, 2, owners))
	// traversal order is owners[2], owners[1], owners[0]

	err := v.RemoveOwner(db, account, owners[2], owners[0])
	assert.True(t, ownerset.ErrWrongPredecessor.Is(err), "unexpected error: %+v", err)

	require.NoError(t, v.RemoveOwner(db, account, owners[2], owners[1]))
	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)

	got, err := v.GetOwners(db, account)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, owners[2].Equals(got[0]))
	assert.True(t, owners[0].Equals(got[1]))
}

// The default validator reproduces the original behavior: removing owners
// is possible even below the threshold and before initialization checks.
func TestRemoveOwnerBelowThreshold(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	owners := ownabletest.NewAddresses(3)
	require.NoError(t, v.Install(db, account, 2, owners))

	// down to 2 owners, still satisfying the threshold
	require.NoError(t, v.RemoveOwner(db, account, ownerset.Sentinel(), owners[2]))
	// down to 1 owner while the threshold is 2: permitted by design
	require.NoError(t, v.RemoveOwner(db, account, ownerset.Sentinel(), owners[1]))

	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count)
	threshold, err := v.Threshold(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), threshold)
}

func TestRemoveOwnerUninitialized(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	// no initialization check, but the removal itself fails on the
	// empty set and leaves no state behind
	err := v.RemoveOwner(db, account, ownerset.Sentinel(), ownabletest.NewAddress())
	require.Error(t, err)
	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), count)
}

func TestStrictRemoveOwner(t *testing.T) {
	db := store.MemStore()
	v := NewStrictValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	err := v.RemoveOwner(db, account, ownerset.Sentinel(), ownabletest.NewAddress())
	assert.True(t, ErrNotInitialized.Is(err), "unexpected error: %+v", err)

	owners := ownabletest.NewAddresses(3)
	require.NoError(t, v.Install(db, account, 2, owners))

	require.NoError(t, v.RemoveOwner(db, account, ownerset.Sentinel(), owners[2]))

	// 2 owners with threshold 2: strict mode refuses to go below
	err = v.RemoveOwner(db, account, ownerset.Sentinel(), owners[1])
	assert.True(t, ErrInvalidThreshold.Is(err), "unexpected error: %+v", err)

	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)
}

// Any sequence of successful management calls must keep GetOwners in sync
// with the implied set.
func TestOwnerRoundTrip(t *testing.T) {
	db := store.MemStore()
	v := NewValidator(&ownabletest.Recoverer{})
	account := ownabletest.NewAddress()

	owners := ownabletest.NewAddresses(2)
	require.NoError(t, v.Install(db, account, 1, owners))

	d := ownabletest.NewAddress()
	e := ownabletest.NewAddress()
	require.NoError(t, v.AddOwner(db, account, d))
	require.NoError(t, v.AddOwner(db, account, e))
	// traversal order: e, d, owners[1], owners[0]
	require.NoError(t, v.RemoveOwner(db, account, e, d))
	require.NoError(t, v.AddOwner(db, account, d))

	got, err := v.GetOwners(db, account)
	require.NoError(t, err)
	want := []ownable.Address{d, e, owners[1], owners[0]}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equals(got[i]), "position %d: %s", i, got[i])
	}
	count, err := v.OwnerCount(db, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(want)), count)
}

func TestSupports(t *testing.T) {
	v := NewValidator(&ownabletest.Recoverer{})
	assert.True(t, v.Supports(CapabilityValidator))
	assert.False(t, v.Supports(Capability(0)))
	assert.False(t, v.Supports(Capability(2)))
}
