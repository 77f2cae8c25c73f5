/*
Package ownabletest provides mocks and test doubles for testing code that
depends on this module: deterministic address generation and a scripted
signer recovery implementation.

Mocks in this package follow a simple convention: configure the attributes
before first use and do not modify them afterwards.
*/
package ownabletest
