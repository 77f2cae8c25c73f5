/*
Package recovery provides a concrete signer recovery primitive for hosts
that do not bring their own: approvals packed as fixed size entries of an
ed25519 public key followed by a signature over the raw operation digest.

The validator package treats recovery as an opaque boundary; everything
that knows the blob layout lives here.
*/
package recovery

import (
	"golang.org/x/crypto/ed25519"

	"github.com/iov-one/ownable"
	"github.com/iov-one/ownable/errors"
	"github.com/iov-one/ownable/validator"
)

const (
	// entrySize is the length of a single packed approval: a public key
	// followed by a signature.
	entrySize = ed25519.PublicKeySize + ed25519.SignatureSize

	// extensionName tags the conditions produced by this package.
	extensionName = "sigs"
)

// Ed25519 recovers signer addresses from packed ed25519 approval blobs.
type Ed25519 struct{}

var _ validator.Recoverer = Ed25519{}

// NewEd25519 returns the packed ed25519 recovery primitive.
func NewEd25519() Ed25519 {
	return Ed25519{}
}

// RecoverSigners interprets the blob as count packed approvals and returns
// the address of every signer. Recovery fails on any size mismatch and on
// any signature that does not verify against the digest - a malformed blob
// is a hard error, never a negative authorization result.
func (Ed25519) RecoverSigners(digest []byte, blob []byte, count int) ([]ownable.Address, error) {
	if count <= 0 {
		return nil, errors.Wrapf(errors.ErrInput, "signer count %d", count)
	}
	if len(blob) != count*entrySize {
		return nil, errors.Wrapf(errors.ErrInput,
			"blob of %d bytes cannot hold %d approvals", len(blob), count)
	}

	signers := make([]ownable.Address, 0, count)
	for i := 0; i < count; i++ {
		entry := blob[i*entrySize : (i+1)*entrySize]
		pub := ed25519.PublicKey(entry[:ed25519.PublicKeySize])
		sig := entry[ed25519.PublicKeySize:]
		if !ed25519.Verify(pub, digest, sig) {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "approval %d does not verify", i)
		}
		signers = append(signers, Condition(pub).Address())
	}
	return signers, nil
}

// Condition returns the condition identifying an ed25519 public key. Its
// address is the owner identity a key holder registers under.
func Condition(pub ed25519.PublicKey) ownable.Condition {
	return ownable.NewCondition(extensionName, "ed25519", pub)
}

// Approve signs the digest and returns a single packed approval entry.
// Concatenate entries from distinct key holders to build a blob.
func Approve(priv ed25519.PrivateKey, digest []byte) []byte {
	pub := priv.Public().(ed25519.PublicKey)
	out := make([]byte, 0, entrySize)
	out = append(out, pub...)
	return append(out, ed25519.Sign(priv, digest)...)
}
