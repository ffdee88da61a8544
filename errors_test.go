package xfer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindErrors(t *testing.T) {
	cause := errors.New("530 Login incorrect.")
	err := NewAuthenticationError(cause)

	assert.Equal(t, cause.Error(), err.Error(), "library message must be kept verbatim")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrTransport)

	assert.Same(t, err, NewAuthenticationError(err), "already classified errors are not wrapped twice")
	assert.Nil(t, NewTransportError(nil))

	wrapped := fmt.Errorf("listing /in: %w", NewNotFoundError(errors.New("550 no such file")))
	assert.ErrorIs(t, wrapped, ErrNotFound)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: errors.New("connection refused"), want: true},
		{err: NewTransportError(errors.New("i/o timeout")), want: true},
		{err: NewTransferError(errors.New("short write")), want: true},
		{err: NewAuthenticationError(errors.New("denied")), want: false},
		{err: NewConfigurationError(errors.New("bad port")), want: false},
		{err: fmt.Errorf("%w: %w", ErrCancelled, context.Canceled), want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRetryable(tt.err), "%v", tt.err)
	}
}
