// Package errs provides the typed errors shared by the domain, application and adapter layers.
//
// Every error type wraps a sentinel so callers classify failures with errors.Is:
//   - ErrObjectNotFound: a lookup by identity missed
//   - ErrValueIsInvalid: a value breaks a business rule
//   - ErrValueIsOutOfRange: a numeric value is outside its allowed bounds
//   - ErrValueIsRequired: a mandatory value is missing
//
// The HTTP adapter maps these sentinels to status codes.
package errs
