package xfer

import (
	"context"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/valensas/xfer/options"
)

// WaitFunc blocks for d or until ctx is done, whichever comes first. It returns ctx.Err() when interrupted.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Connector drives Client.ConnectToServer according to a ConnectionModel's backoff schedule.
//
// A Connector holds no per-call state, so a single Connector may be shared by any number of goroutines as long as
// each drives its own Client.
type Connector struct {
	wait WaitFunc
}

// NewConnector initializer for Connector struct.
func NewConnector(opts ...options.NewClientOption[Connector]) *Connector {
	c := &Connector{
		wait: waitContext,
	}

	options.ApplyOptions(c, opts...)

	return c
}

var defaultConnector = NewConnector()

// AuthAndConnect connects client using the default Connector. See Connector.AuthAndConnect.
func AuthAndConnect(ctx context.Context, client Client, model ConnectionModel) (ConnectionResult, error) {
	return defaultConnector.AuthAndConnect(ctx, client, model)
}

// AuthAndConnect attempts to connect client to the server described by model.
//
// The first attempt is made immediately. Each transport failure is recorded and, while the schedule has entries
// left, followed by a wait of model.Backoff()[i] before the next attempt, so a schedule of length N yields at most
// N+1 attempts. The loop stops at the first successful attempt.
//
// A returned error means no ConnectionResult was produced:
//   - model fails validation (ErrConfiguration), before any attempt is made
//   - the server rejected the credentials (ErrAuthentication), on the attempt that saw it
//   - ctx was cancelled before an attempt or during a wait (ErrCancelled, also matching ctx.Err())
//
// Exhausting the schedule is not an error: the result has Connected set to false.
func (c *Connector) AuthAndConnect(ctx context.Context, client Client, model ConnectionModel) (ConnectionResult, error) {
	if err := model.Validate(); err != nil {
		return ConnectionResult{}, err
	}

	log := clog.FromContext(ctx).With("connection", model.String())
	schedule := model.Backoff()

	var messages []string
	retries := 0
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return ConnectionResult{}, cancelled(err)
		}

		err := client.ConnectToServer(ctx, model)
		if err == nil {
			if retries > 0 {
				log.InfoContext(ctx, "connected after retrying", "retries", retries)
			}
			return ConnectionResult{
				Connected:  true,
				RetryCount: retries,
				Errors:     groupErrors(messages),
			}, nil
		}

		if !IsRetryable(err) {
			return ConnectionResult{}, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ConnectionResult{}, cancelled(ctxErr)
		}

		messages = append(messages, err.Error())

		if attempt >= len(schedule) {
			log.ErrorContext(ctx, "connection attempts exhausted", "attempts", attempt+1, "error", err)
			break
		}

		backoff := schedule[attempt]
		log.WarnContext(ctx, "connection attempt failed", "attempt", attempt+1, "backoff", backoff, "error", err)

		retries++
		if err := c.wait(ctx, backoff); err != nil {
			return ConnectionResult{}, cancelled(err)
		}
	}

	return ConnectionResult{
		Connected:  false,
		RetryCount: retries,
		Errors:     groupErrors(messages),
	}, nil
}

func cancelled(cause error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}

func waitContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
