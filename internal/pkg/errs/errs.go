package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification via errors.Is.
// Each concrete error type below unwraps to one of these.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrInvalidReference = errors.New("invalid reference")

	// ErrSelfReference is returned when an order's reference list contains
	// the order's own id. It carries the user-facing message verbatim.
	ErrSelfReference = errors.New("An order cannot reference itself")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value is present but violates a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates an id does not resolve to a live record.
// Entity is the user-facing entity name ("Organization", "Product", "Order");
// the message matches the API contract, e.g. "Organization not found".
type ObjectNotFoundError struct {
	Entity string
	ID     int64
	Cause  error
}

func NewObjectNotFoundError(entity string, id int64) *ObjectNotFoundError {
	return &ObjectNotFoundError{Entity: entity, ID: id}
}

func NewObjectNotFoundErrorWithCause(entity string, id int64, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{Entity: entity, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s not found (id: %d, cause: %s)", e.Entity, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s not found", e.Entity))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidReferenceError indicates a nested id list named at least one id that
// did not resolve in a bulk lookup. The message matches the API contract,
// e.g. "Invalid Order ID".
type InvalidReferenceError struct {
	Entity string
}

func NewInvalidReferenceError(entity string) *InvalidReferenceError {
	return &InvalidReferenceError{Entity: entity}
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("Invalid %s ID", e.Entity)
}

func (e *InvalidReferenceError) Unwrap() error {
	return ErrInvalidReference
}
