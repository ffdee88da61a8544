package xfer

import (
	"errors"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrConfiguration - the ConnectionModel violates an invariant or can't be served by the client
	ErrConfiguration = Error("invalid connection configuration")

	// ErrAuthentication - credentials were explicitly rejected by the server. Never retried.
	ErrAuthentication = Error("authentication failed")

	// ErrTransport - connection refused, timed out, reset or failed TLS/SSH handshake. Retried per backoff schedule.
	ErrTransport = Error("transport failure")

	// ErrNotFound - remote path does not exist
	ErrNotFound = Error("remote path does not exist")

	// ErrTransfer - I/O fault during upload or download
	ErrTransfer = Error("transfer failed")

	// ErrCancelled - the retry sequence was cancelled by the caller's context
	ErrCancelled = Error("connection attempts cancelled")
)

// kindError attaches an error kind to a library error without altering its message.
type kindError struct {
	kind Error
	err  error
}

// Error returns the wrapped error's message verbatim.
func (e *kindError) Error() string { return e.err.Error() }

// Unwrap allows errors.Is and errors.As to match both the kind and the wrapped error.
func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

func wrapKind(kind Error, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return &kindError{kind: kind, err: err}
}

// NewConfigurationError marks err as an ErrConfiguration.
func NewConfigurationError(err error) error { return wrapKind(ErrConfiguration, err) }

// NewAuthenticationError marks err as an ErrAuthentication.
func NewAuthenticationError(err error) error { return wrapKind(ErrAuthentication, err) }

// NewTransportError marks err as an ErrTransport.
func NewTransportError(err error) error { return wrapKind(ErrTransport, err) }

// NewNotFoundError marks err as an ErrNotFound.
func NewNotFoundError(err error) error { return wrapKind(ErrNotFound, err) }

// NewTransferError marks err as an ErrTransfer.
func NewTransferError(err error) error { return wrapKind(ErrTransfer, err) }

// IsRetryable reports whether err is worth another connection attempt. Authentication and configuration
// errors are not, nor is cancellation. Anything else is treated as a transport fault.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, ErrAuthentication),
		errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrCancelled):
		return false
	}
	return true
}
