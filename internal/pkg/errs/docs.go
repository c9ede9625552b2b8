// Package errs provides standardized error types for the farmlend backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the scenarios the API distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a validation rule
//   - ObjectNotFoundError: an id does not resolve to a live record
//   - InvalidReferenceError: a nested order/product id failed a bulk lookup
//   - ErrSelfReference: an order references itself
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for the user-facing message, Unwrap() for classification
//
// The transport layer maps sentinels to HTTP status codes: not-found
// errors become 404, everything else in this package becomes 400.
package errs
