package meta

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors shared by the descriptor and generator layers.
var (
	// ErrInvalidDescriptor is returned when a property or class descriptor
	// is constructed with an empty or malformed name, or when a class is
	// populated with a descriptor it cannot own.
	ErrInvalidDescriptor = errors.New("meta: invalid descriptor")

	// ErrUnresolvedType is returned when a property's value type has no
	// mapping to a type of the output language.
	ErrUnresolvedType = errors.New("meta: unresolved type")

	// ErrNullInput is returned when generation is invoked without a class.
	ErrNullInput = errors.New("meta: nil class descriptor")
)

// DescriptorError represents a descriptor construction error.
type DescriptorError struct {
	Class    string // Class name (if known)
	Property string // Property name (if applicable)
	Message  string
}

// Error returns the error string.
func (e *DescriptorError) Error() string {
	var b strings.Builder
	b.WriteString("meta: invalid descriptor")
	if e.Class != "" {
		b.WriteString(" on class ")
		b.WriteString(e.Class)
	}
	if e.Property != "" {
		fmt.Fprintf(&b, " property %q", e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target error matches DescriptorError.
// This allows errors.Is(descriptorErr, ErrInvalidDescriptor) to return true.
func (e *DescriptorError) Is(err error) bool {
	return err == ErrInvalidDescriptor
}

// NewDescriptorError returns a new DescriptorError.
func NewDescriptorError(class, property, message string) *DescriptorError {
	return &DescriptorError{Class: class, Property: property, Message: message}
}

// IsInvalidDescriptor returns true if the error is a DescriptorError.
func IsInvalidDescriptor(err error) bool {
	if err == nil {
		return false
	}
	var e *DescriptorError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidDescriptor)
}

// UnresolvedTypeError represents a property whose value type cannot be
// mapped to an output-language type name.
type UnresolvedTypeError struct {
	Class    string
	Property string
	Type     string // Semantic type tag as reported by the descriptor
	Dialect  string // Output language (if known)
}

// Error returns the error string.
func (e *UnresolvedTypeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "meta: unresolved type %s for property %q", e.Type, e.Property)
	if e.Class != "" {
		b.WriteString(" of class ")
		b.WriteString(e.Class)
	}
	if e.Dialect != "" {
		b.WriteString(" (dialect: ")
		b.WriteString(e.Dialect)
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether the target error matches UnresolvedTypeError.
func (e *UnresolvedTypeError) Is(err error) bool {
	return err == ErrUnresolvedType
}

// NewUnresolvedTypeError returns a new UnresolvedTypeError.
func NewUnresolvedTypeError(class, property, typ, dialect string) *UnresolvedTypeError {
	return &UnresolvedTypeError{Class: class, Property: property, Type: typ, Dialect: dialect}
}

// IsUnresolvedType returns true if the error is an UnresolvedTypeError.
func IsUnresolvedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnresolvedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnresolvedType)
}

// IsNullInput returns true if the error reports a missing class descriptor.
func IsNullInput(err error) bool {
	return err != nil && errors.Is(err, ErrNullInput)
}
