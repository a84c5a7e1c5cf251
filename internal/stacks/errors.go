package stacks

import (
	"errors"
	"fmt"
)

// FailureKind distinguishes why the chain API could not be consulted. All
// kinds collapse to the same contract-level outcome (the balance is
// unavailable) but operators need the cause.
type FailureKind string

const (
	// FailureTransport covers dial, TLS and timeout errors.
	FailureTransport FailureKind = "transport"
	// FailureRemote covers non-2xx responses from the provider.
	FailureRemote FailureKind = "remote"
	// FailureDecode covers malformed or unexpected response bodies.
	FailureDecode FailureKind = "decode"
)

// UnavailableError reports that the chain API could not supply a usable
// response. Unavailable is a distinct state from a zero balance.
type UnavailableError struct {
	Kind      FailureKind
	Operation string
	// Status is set for FailureRemote only.
	Status int
	cause  error
}

func (e *UnavailableError) Error() string {
	switch e.Kind {
	case FailureRemote:
		return fmt.Sprintf("stacks api %s unavailable: remote status %d", e.Operation, e.Status)
	default:
		return fmt.Sprintf("stacks api %s unavailable: %s: %v", e.Operation, e.Kind, e.cause)
	}
}

func (e *UnavailableError) Unwrap() error {
	return e.cause
}

// IsUnavailable reports whether err means the chain API gave no usable
// answer.
func IsUnavailable(err error) bool {
	var u *UnavailableError
	return errors.As(err, &u)
}
