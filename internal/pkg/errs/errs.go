package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Typed errors below wrap
// exactly one sentinel so callers can classify failures with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")

	ErrComplianceDenied  = errors.New("compliance check failed")
	ErrResourceConflict  = errors.New("resource already committed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrActionNotAllowed  = errors.New("action not allowed")
)

// sanitize strips line breaks from formatted error output so a single error
// always renders as one log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        interface{}
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id interface{}) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id interface{}, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
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

// ValueIsOutOfRangeError indicates that a numeric value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     interface{}
	Min       interface{}
	Max       interface{}
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue interface{}) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue interface{}, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
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

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ComplianceDeniedError indicates that the compliance gate rejected an assignment.
// Reasons carries every individual failure so the caller can report all of them.
type ComplianceDeniedError struct {
	Reasons []string
}

// NewComplianceDeniedError creates a ComplianceDeniedError with the collected failure reasons.
func NewComplianceDeniedError(reasons []string) *ComplianceDeniedError {
	return &ComplianceDeniedError{Reasons: reasons}
}

func (e *ComplianceDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrComplianceDenied, strings.Join(e.Reasons, "; ")))
}

func (e *ComplianceDeniedError) Unwrap() error {
	return ErrComplianceDenied
}

// ResourceConflictError indicates that a truck, trailer or driver is already
// committed to another order.
type ResourceConflictError struct {
	ResourceKind string
	ResourceID   string
}

// NewResourceConflictError creates a ResourceConflictError naming the contended resource.
func NewResourceConflictError(resourceKind, resourceID string) *ResourceConflictError {
	return &ResourceConflictError{ResourceKind: resourceKind, ResourceID: resourceID}
}

func (e *ResourceConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s", ErrResourceConflict, e.ResourceKind, e.ResourceID))
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}

// InvalidTransitionError indicates that a requested order status transition is
// not legal from the current status.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithReason creates an InvalidTransitionError naming
// the unmet precondition.
func NewInvalidTransitionErrorWithReason(from, to, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return sanitize(fmt.Sprintf("%s: %s -> %s (reason: %s)", ErrInvalidTransition, e.From, e.To, e.Reason))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ActionNotAllowedError indicates that the acting role may not perform the action.
type ActionNotAllowedError struct {
	Role   string
	Action string
}

// NewActionNotAllowedError creates an ActionNotAllowedError for the given role and action.
func NewActionNotAllowedError(role, action string) *ActionNotAllowedError {
	return &ActionNotAllowedError{Role: role, Action: action}
}

func (e *ActionNotAllowedError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %s cannot perform %s", ErrActionNotAllowed, e.Role, e.Action))
}

func (e *ActionNotAllowedError) Unwrap() error {
	return ErrActionNotAllowed
}
