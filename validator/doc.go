/*
Package validator implements the lifecycle and the decision procedure of a
threshold multi-owner authorization policy.

Each account configures a set of owner addresses and a threshold. An
operation is authorized when the approval blob, interpreted by a pluggable
Recoverer, yields at least threshold distinct signers that are registered
owners of the account.

Configuration mistakes (unsorted owner list, zero threshold, capacity
overflow, the zero address) are hard errors, as they indicate a caller bug
worth surfacing immediately. Authorization outcomes are plain booleans:
"not enough approvals" is an expected result of the protocol and carries
no detail beyond pass/fail, to avoid becoming an oracle for partial
approval information.
*/
package validator
