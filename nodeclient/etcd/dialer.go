package etcd

import (
	"context"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/maxpoletaev/kvdns/nodeclient"
)

const defaultDialTimeout = 5 * time.Second

// Dial connects to a single etcd member. The client is pinned to the given
// address: endpoint auto-sync is disabled, so all requests go to that member
// until the connection is closed. It blocks until the connection is ready or
// the context deadline is reached.
func Dial(ctx context.Context, addr string) (nodeclient.Conn, error) {
	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	if timeout <= 0 {
		return nil, fmt.Errorf("etcd dial %s: %w", addr, context.DeadlineExceeded)
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   []string{addr},
		DialTimeout: timeout,
		DialOptions: []grpc.DialOption{grpc.WithBlock()},
		Logger:      zap.NewNop(),
	})
	if err != nil {
		return nil, fmt.Errorf("etcd dial %s: %w", addr, err)
	}

	c := newConn(client.KV, client.Cluster)

	c.addOnCloseHook(func() error {
		return client.Close()
	})

	return c, nil
}
