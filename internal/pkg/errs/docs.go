// Package errs provides standardized error types for the flower delivery back-office.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the use cases, and the HTTP adapter.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a business rule
//   - ValueIsOutOfRangeError: For when a number is outside its allowed bounds
//   - ObjectNotFoundError: For when a delivery or contact cannot be found
//   - ObjectConflictError: For duplicate keys and refused status transitions
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
//
// The HTTP adapter maps the sentinels onto status codes, so handlers never
// inspect error strings.
package errs
