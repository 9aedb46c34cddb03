// Package errs provides the error taxonomy shared by the domain, the use cases
// and the adapters of the food delivery service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels map onto the categories exposed by the HTTP layer:
//   - ErrObjectNotFound: the referenced entity does not exist (404)
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: malformed input (400)
//   - ErrPreconditionFailed: valid input rejected by the current state (400)
//   - ErrObjectIsUnavailable: the entity exists but is flagged as not usable (400)
//
// Anything that does not unwrap to one of them is treated as an internal failure.
package errs
