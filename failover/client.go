package failover

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kvdns/nodeclient"
	"github.com/maxpoletaev/kvdns/nodeclient/etcd"
)

const (
	DefaultMaxAttempts = 5
	DefaultRetryDelay  = 2 * time.Second
	DefaultDialTimeout = 5 * time.Second
)

type activeConn struct {
	node Node
	conn nodeclient.Conn
}

// Client is a key-value client bound to a single cluster node at a time. When
// an operation fails, the client switches to a node on a different host and
// retries the operation after a fixed delay.
//
// The client is safe for concurrent use. Operations are serialized, so a
// failover started by one caller always completes before another caller can
// observe the active connection.
type Client struct {
	mut               sync.Mutex
	registry          *Registry
	active            activeConn
	closed            bool
	dialer            nodeclient.Dialer
	logger            kitlog.Logger
	observer          Observer
	rand              *rand.Rand
	addrSource        AddrSource
	maxAttempts       int
	discoveryAttempts int
	retryDelay        time.Duration
	dialTimeout       time.Duration
}

// New connects to the bootstrap node and captures the cluster membership as
// reported by that node. The membership is never refreshed afterwards, so the
// nodes added to the cluster later are not used for failover.
func New(ctx context.Context, bootstrapAddr string, opts ...Option) (*Client, error) {
	c := &Client{
		dialer:            etcd.Dial,
		logger:            kitlog.NewNopLogger(),
		observer:          nopObserver{},
		rand:              rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec
		addrSource:        PeerURLs,
		maxAttempts:       DefaultMaxAttempts,
		discoveryAttempts: 1,
		retryDelay:        DefaultRetryDelay,
		dialTimeout:       DefaultDialTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxAttempts < 1 {
		return nil, fmt.Errorf("max attempts must be positive, got %d", c.maxAttempts)
	}

	bootstrap, err := ParseAddr(bootstrapAddr)
	if err != nil {
		return nil, err
	}

	if err := c.bootstrap(ctx, bootstrap); err != nil {
		return nil, err
	}

	level.Info(c.logger).Log(
		"msg", "cluster nodes discovered",
		"nodes", fmt.Sprint(c.registry.Nodes()),
	)

	level.Info(c.logger).Log(
		"msg", "current write node",
		"node", c.active.node,
	)

	return c, nil
}

func (c *Client) bootstrap(ctx context.Context, node Node) error {
	var err error

	for attempt := 1; ; attempt++ {
		if err = c.discover(ctx, node); err == nil {
			return nil
		}

		if attempt >= c.discoveryAttempts {
			return err
		}

		level.Warn(c.logger).Log(
			"msg", "cluster discovery failed",
			"node", node,
			"attempt", attempt,
			"err", err,
		)

		if err := sleepContext(ctx, c.retryDelay); err != nil {
			return err
		}
	}
}

func (c *Client) discover(ctx context.Context, node Node) error {
	conn, err := c.dial(ctx, node)
	if err != nil {
		return err
	}

	members, err := conn.Members(ctx)
	if err != nil {
		c.closeConn(node, conn)
		return fmt.Errorf("failed to list cluster members: %w", err)
	}

	registry, err := registryFromMembers(members, c.addrSource)
	if err != nil {
		c.closeConn(node, conn)
		return fmt.Errorf("failed to build node registry: %w", err)
	}

	c.registry = registry
	c.active = activeConn{node: node, conn: conn}

	return nil
}

func (c *Client) dial(ctx context.Context, node Node) (nodeclient.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	conn, err := c.dialer(ctx, node.Addr())
	if err != nil {
		return nil, &ConnectionError{Node: node, Err: err}
	}

	return conn, nil
}

func (c *Client) closeConn(node Node, conn nodeclient.Conn) {
	if err := conn.Close(); err != nil {
		level.Warn(c.logger).Log("msg", "failed to close connection", "node", node, "err", err)
	}
}

// Current returns the node the client is currently connected to.
func (c *Client) Current() Node {
	c.mut.Lock()
	defer c.mut.Unlock()

	return c.active.node
}

// Nodes returns the cluster nodes captured at construction time.
func (c *Client) Nodes() []Node {
	return c.registry.Nodes()
}

// Close releases the active connection. Subsequent operations fail with
// ErrClientClosed.
func (c *Client) Close() error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	return c.active.conn.Close()
}

// Put stores the value under the given key.
func (c *Client) Put(ctx context.Context, key, value string) error {
	return c.do(ctx, "put", func(ctx context.Context, conn nodeclient.Conn) error {
		return conn.Put(ctx, key, value)
	})
}

// Get returns the value stored under the given key, or nodeclient.ErrNotFound.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := c.do(ctx, "get", func(ctx context.Context, conn nodeclient.Conn) (err error) {
		value, err = conn.Get(ctx, key)
		return err
	})

	return value, err
}

// Delete removes the key.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.do(ctx, "delete", func(ctx context.Context, conn nodeclient.Conn) error {
		return conn.Delete(ctx, key)
	})
}
