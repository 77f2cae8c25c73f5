/*
Package errors implements the error interfaces used across this module.

The idea is to reuse as many errors from this package as possible and
define custom package errors when absolutely necessary. It is best to
define a new error here if you feel it is going to be somewhat
package-agnostic. The ownerset and validator packages register their own
domain errors in the 1100+ code range.

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf.
The code allows to distinguish kinds of errors on the caller side and act
accordingly.

There is also support for stacktraces. Please ensure you create the error
using ErrXyz.New("...") or errors.Wrap(err, "...") at the point of
creation to ensure we attach a stacktrace. If you wrap multiple times, we
only record the first wrap with the stacktrace.
*/
package errors
