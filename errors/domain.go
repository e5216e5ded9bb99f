package errors

import (
	"errors"
	"fmt"
)

// Sentinels for lookups; wrap them with context and test with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// InvariantKind is the kind of a violated domain invariant.
type InvariantKind string

const (
	KindDomain InvariantKind = "domain"
	KindState  InvariantKind = "state"
)

// InvariantError is a field-level or state-level domain error.
type InvariantError struct {
	Kind   InvariantKind
	Base   error
	Field  string
	Reason string
}

func (e InvariantError) Error() string {
	switch e.Kind {
	case KindState:
		if e.Reason == "" {
			if e.Base == nil {
				return "state: invalid"
			}
			return fmt.Sprintf("state: %v", e.Base)
		}
		if e.Base == nil {
			return fmt.Sprintf("state: %s", e.Reason)
		}
		return fmt.Sprintf("state: %v: %s", e.Base, e.Reason)
	default:
		if e.Field == "" {
			return e.Reason
		}
		if e.Base == nil {
			return fmt.Sprintf("%s: %s", e.Field, e.Reason)
		}
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Base)
	}
}

// Unwrap supports errors.Is / errors.As.
func (e InvariantError) Unwrap() error {
	return e.Base
}

// DomainInvariant creates a field-level validation error.
// Example: "phone: invalid_length".
func DomainInvariant(field, reason string) error {
	return InvariantError{Kind: KindDomain, Field: field, Reason: reason}
}

// StateInvariant creates a state error, e.g. a corrupt persisted record.
func StateInvariant(base error, field, reason string) error {
	return InvariantError{Kind: KindState, Base: base, Field: field, Reason: reason}
}
