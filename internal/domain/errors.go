package domain

import (
	"fmt"
	"strings"
)

// NetworkError is a transport failure, timeout or non-2xx answer from the
// remote store.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RemoteError means the remote store answered but reported success=false.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Op + ": remote store rejected the request"
	}
	return e.Op + ": " + e.Message
}

// UnknownIdentityError carries the raw scanned payload and every known
// token so the operator can debug a bad code in the field.
type UnknownIdentityError struct {
	Scanned string
	Known   []string
}

func (e *UnknownIdentityError) Error() string {
	quoted := make([]string, len(e.Known))
	for i, k := range e.Known {
		quoted[i] = "'" + k + "'"
	}
	return fmt.Sprintf("unknown identity: scanned '%s', known: %s", e.Scanned, strings.Join(quoted, ", "))
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// WriteError is returned when a submitted transaction could not be persisted
// and the optimistic state was rolled back.
type WriteError struct {
	TransactionID string
	Err           error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("transaction %s rolled back: %v", e.TransactionID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
