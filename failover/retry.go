package failover

import (
	"context"
	"errors"
	"time"

	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kvdns/nodeclient"
)

type operation func(ctx context.Context, conn nodeclient.Conn) error

// do runs the operation against the active connection. Every failed attempt is
// followed by a failover, so N failed attempts result in N failovers. Errors
// classified as fatal are returned straight away. Once all attempts are used,
// the last operation error is returned as is.
func (c *Client) do(ctx context.Context, name string, op operation) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	for attempt := 1; ; attempt++ {
		err := op(ctx, c.active.conn)
		c.observer.ObserveAttempt(name, err)

		if err == nil {
			return nil
		}

		if nodeclient.IsFatal(err) || ctx.Err() != nil {
			return err
		}

		level.Warn(c.logger).Log(
			"msg", "operation failed",
			"op", name,
			"node", c.active.node,
			"attempt", attempt,
			"err", err,
		)

		if ferr := c.failover(ctx); ferr != nil {
			var selErr *SelectionError
			if errors.As(ferr, &selErr) {
				selErr.Cause = err
				return selErr
			}

			level.Error(c.logger).Log("msg", "failover failed", "err", ferr)
		}

		if attempt >= c.maxAttempts {
			c.observer.ObserveExhausted(name)
			return err
		}

		if err := sleepContext(ctx, c.retryDelay); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
