package failover

import (
	"context"

	"github.com/go-kit/log/level"
)

// Failover switches the client to a randomly chosen node located on a host
// other than the current one. On error, the active connection is left as is.
func (c *Client) Failover(ctx context.Context) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return ErrClientClosed
	}

	return c.failover(ctx)
}

// failover must be called with the lock held.
func (c *Client) failover(ctx context.Context) error {
	current := c.active.node

	level.Warn(c.logger).Log("msg", "failover procedure started", "node", current)

	candidates := c.registry.Eligible(current)
	if len(candidates) == 0 {
		return &SelectionError{Current: current}
	}

	next := candidates[c.rand.Intn(len(candidates))]

	conn, err := c.dial(ctx, next)
	if err != nil {
		return err
	}

	// The old connection is released before anyone can see the new one.
	c.closeConn(current, c.active.conn)
	c.active = activeConn{node: next, conn: conn}

	level.Info(c.logger).Log("msg", "selected new write node", "node", next)
	c.observer.ObserveFailover(current, next)

	return nil
}
