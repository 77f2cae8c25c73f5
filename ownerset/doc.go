/*
Package ownerset implements a per-account set of unique, non-zero owner
addresses stored in a KVStore as a singly linked list with a sentinel
marker.

The sentinel is a reserved address that acts as both the head and the
terminator of the list. Its presence distinguishes an initialized (but
possibly empty) set from an account that was never initialized. Insertion
happens at the head in O(1) and removal is O(1) given the predecessor
entry, which callers are expected to track - acceptable because the set
is capacity bounded and removal is a rare administrative action.
*/
package ownerset
