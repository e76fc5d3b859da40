// Package errs provides the typed errors shared by the sauna ordering service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Error() and Unwrap() methods
//
// Values embedded in messages are flattened to a single line.
package errs
