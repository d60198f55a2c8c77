package hypermedia

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingRel indicates a link has no relation name.
	ErrMissingRel = errors.New("missing rel")

	// ErrMissingHref indicates a link has no target.
	ErrMissingHref = errors.New("missing href")

	// ErrEvaluate indicates an href computation failed during serialization.
	ErrEvaluate = errors.New("evaluate link failed")

	// ErrMissingLinks indicates a type declares links but has no links attribute.
	ErrMissingLinks = errors.New("missing links attribute")

	// ErrNotStruct indicates the resource type is not a struct.
	ErrNotStruct = errors.New("resource type is not a struct")

	// ErrUnsupportedWrap indicates a root wrap was requested on a codec that cannot nest documents.
	ErrUnsupportedWrap = errors.New("codec does not support wrapping")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a representer configuration error.
// It wraps a sentinel error with context about the type and field involved.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrMissingLinks, etc.)
	Type  string // Resource type that triggered the error
	Field string // Field path, when one is involved
}

func (e *ConfigError) Error() string {
	if e.Type != "" && e.Field != "" {
		return fmt.Sprintf("%s for type %s (field %s)", e.Err.Error(), e.Type, e.Field)
	}
	if e.Type != "" {
		return fmt.Sprintf("%s for type %s", e.Err.Error(), e.Type)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LinkError represents a failure computing a single declared link.
// It matches both its sentinel and the underlying cause under errors.Is.
type LinkError struct {
	Err   error  // Underlying sentinel error (ErrEvaluate)
	Type  string // Resource type owning the definition
	Rel   string // Relation whose href computation failed
	Cause error  // Error returned by the href computation
}

func (e *LinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("link %q on %s: %v", e.Rel, e.Type, e.Cause)
	}
	return fmt.Sprintf("link %q on %s", e.Rel, e.Type)
}

func (e *LinkError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes the sentinel and the codec's error, so link validation
// failures surfacing from inside a codec stay matchable.
func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newConfigError creates a ConfigError for invalid resource types.
func newConfigError(sentinel error, typeName, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Type:  typeName,
		Field: field,
	}
}

// newLinkError creates a LinkError for href computation failures.
func newLinkError(typeName, rel string, cause error) error {
	return &LinkError{
		Err:   ErrEvaluate,
		Type:  typeName,
		Rel:   rel,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
