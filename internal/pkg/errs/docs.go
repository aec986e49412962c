// Package errs provides standardized error types for the chef-booking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found, including
//     conditional updates that matched no row
//   - NotAuthorizedError: For callers acting on orders they do not own
//   - ConflictError: For transitions attempted from a non-matching status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach keeps the error taxonomy of the order lifecycle
// (validation, not-found, authorization, conflict) classifiable with errors.Is
// at every call site.
package errs
