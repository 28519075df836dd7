// Package errs provides the error taxonomy shared by the purchasing service.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ErrConflict, ...)
//   - a struct carrying the details and an optional Cause
//   - New...Error / New...ErrorWithCause constructors
//   - Unwrap returning the sentinel so callers classify with errors.Is
//
// The sentinels group into four classes that the transport layer maps to
// responses:
//   - validation: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange
//   - not found: ErrObjectNotFound
//   - conflict: ErrConflict
//   - internal: ErrInternal
package errs
