package failover

import (
	"math/rand"
	"time"

	kitlog "github.com/go-kit/log"

	"github.com/maxpoletaev/kvdns/nodeclient"
)

type Option func(*Client)

// WithDialer sets the function used to connect to cluster nodes.
func WithDialer(d nodeclient.Dialer) Option {
	return func(c *Client) {
		c.dialer = d
	}
}

func WithLogger(logger kitlog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithRand sets the source of randomness used to pick failover targets.
// The client serializes access to it, so it does not need to be thread-safe.
func WithRand(r *rand.Rand) Option {
	return func(c *Client) {
		c.rand = r
	}
}

func WithSeed(seed int64) Option {
	return func(c *Client) {
		c.rand = rand.New(rand.NewSource(seed)) //nolint:gosec
	}
}

func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		c.maxAttempts = n
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.dialTimeout = d
	}
}

// WithDiscoveryAttempts allows the client to retry cluster discovery at
// construction time. By default, a single failed attempt is fatal.
func WithDiscoveryAttempts(n int) Option {
	return func(c *Client) {
		c.discoveryAttempts = n
	}
}

// WithAddrSource selects whether peer or client URLs of the cluster members
// are used as failover targets. Peer URLs are used by default.
func WithAddrSource(s AddrSource) Option {
	return func(c *Client) {
		c.addrSource = s
	}
}
