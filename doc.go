/*
Package ownable is the root package of a threshold multi-owner
authorization module.

An account registers a set of owner addresses together with a threshold.
An operation on behalf of that account is authorized when at least
threshold distinct registered owners approve it. The host execution
environment supplies the canonical digest of the operation and an opaque
approval blob; a pluggable recovery primitive turns the blob into a list
of claimed signer addresses.

This package holds the framework-level types shared by all others:
the Address and Condition identity types and the KVStore contract that
the host must provide for per-account state.

The concern packages build on top of it:

	errors     coded errors with stack traces
	store      btree-backed in-memory KVStore implementation
	ownerset   per-account sentinel-linked owner set
	validator  policy lifecycle and the validation engine
	recovery   packed ed25519 approval blob recovery
*/
package ownable
