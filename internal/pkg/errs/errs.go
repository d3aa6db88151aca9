package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as classification anchors for errors.Is checks.
// Each typed error below unwraps to exactly one of these.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrResourceContention = errors.New("resource is contended")
	ErrResourceExhausted  = errors.New("resource is exhausted")
	ErrDownstreamRender   = errors.New("downstream render failed")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs and HTTP responses.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be resolved by its
// identifier. ParamName names the lookup parameter, ID holds the value that
// failed to resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
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

// ValueIsInvalidError indicates that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
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

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// permitted [Min, Max] interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
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

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
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

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
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

// ResourceContentionError indicates that a row-level lock on a shared counter
// (hub capacity or hub stock) or on a shipment row could not be acquired
// within the bounded wait. The operation was rolled back and is safe to retry.
type ResourceContentionError struct {
	Resource string
	Key      string
	Cause    error
}

// NewResourceContentionError creates a ResourceContentionError without an underlying cause.
func NewResourceContentionError(resource, key string) *ResourceContentionError {
	return &ResourceContentionError{Resource: resource, Key: key}
}

// NewResourceContentionErrorWithCause creates a ResourceContentionError wrapping an underlying cause.
func NewResourceContentionErrorWithCause(resource, key string, cause error) *ResourceContentionError {
	return &ResourceContentionError{Resource: resource, Key: key, Cause: cause}
}

func (e *ResourceContentionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s (cause: %s)", ErrResourceContention, e.Resource, e.Key, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrResourceContention, e.Resource, e.Key))
}

func (e *ResourceContentionError) Unwrap() error {
	return ErrResourceContention
}

// ResourceExhaustedError indicates that decrementing a shared counter would
// drive it below zero. Requested is the amount the caller asked for,
// Available is what the counter held at lock time.
type ResourceExhaustedError struct {
	Resource  string
	Key       string
	Requested float64
	Available float64
}

// NewResourceExhaustedError creates a ResourceExhaustedError.
func NewResourceExhaustedError(resource, key string, requested, available float64) *ResourceExhaustedError {
	return &ResourceExhaustedError{Resource: resource, Key: key, Requested: requested, Available: available}
}

func (e *ResourceExhaustedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s, requested %v, available %v",
		ErrResourceExhausted, e.Resource, e.Key, e.Requested, e.Available))
}

func (e *ResourceExhaustedError) Unwrap() error {
	return ErrResourceExhausted
}

// DownstreamRenderError indicates that a post-commit rendering step (route
// manifest generation) failed. The selection itself is already committed, so
// this error degrades to a warning and never triggers a rollback.
type DownstreamRenderError struct {
	Renderer string
	Cause    error
}

// NewDownstreamRenderError creates a DownstreamRenderError wrapping an underlying cause.
func NewDownstreamRenderError(renderer string, cause error) *DownstreamRenderError {
	return &DownstreamRenderError{Renderer: renderer, Cause: cause}
}

func (e *DownstreamRenderError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDownstreamRender, e.Renderer, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDownstreamRender, e.Renderer))
}

func (e *DownstreamRenderError) Unwrap() error {
	return ErrDownstreamRender
}
