package etcd

import (
	"context"
	"sync/atomic"

	clientv3 "go.etcd.io/etcd/client/v3"
	"google.golang.org/grpc/codes"

	"github.com/maxpoletaev/kvdns/internal/grpcutil"
	"github.com/maxpoletaev/kvdns/internal/multierror"
	"github.com/maxpoletaev/kvdns/nodeclient"
)

var (
	_ nodeclient.Conn = (*Conn)(nil)
)

type kvClient interface {
	Put(ctx context.Context, key, val string, opts ...clientv3.OpOption) (*clientv3.PutResponse, error)
	Get(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.GetResponse, error)
	Delete(ctx context.Context, key string, opts ...clientv3.OpOption) (*clientv3.DeleteResponse, error)
}

type clusterClient interface {
	MemberList(ctx context.Context) (*clientv3.MemberListResponse, error)
}

// Conn is a connection to a single etcd member.
type Conn struct {
	kv      kvClient
	cluster clusterClient
	onClose []func() error
	closed  uint32
}

func newConn(kv kvClient, cluster clusterClient) *Conn {
	return &Conn{
		kv:      kv,
		cluster: cluster,
	}
}

func (c *Conn) addOnCloseHook(f func() error) {
	c.onClose = append(c.onClose, f)
}

func (c *Conn) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return nil // already closed
	}

	errs := multierror.New[int]()

	for idx, f := range c.onClose {
		if err := f(); err != nil {
			errs.Add(idx, err)
		}
	}

	return errs.Combined()
}

func (c *Conn) IsClosed() bool {
	return atomic.LoadUint32(&c.closed) == 1
}

func (c *Conn) Put(ctx context.Context, key, value string) error {
	if _, err := c.kv.Put(ctx, key, value); err != nil {
		return operationError("put", key, err)
	}

	return nil
}

func (c *Conn) Get(ctx context.Context, key string) (string, error) {
	resp, err := c.kv.Get(ctx, key)
	if err != nil {
		return "", operationError("get", key, err)
	}

	if len(resp.Kvs) == 0 {
		return "", nodeclient.ErrNotFound
	}

	return string(resp.Kvs[0].Value), nil
}

func (c *Conn) Delete(ctx context.Context, key string) error {
	if _, err := c.kv.Delete(ctx, key); err != nil {
		return operationError("delete", key, err)
	}

	return nil
}

func (c *Conn) Members(ctx context.Context) ([]nodeclient.Member, error) {
	resp, err := c.cluster.MemberList(ctx)
	if err != nil {
		return nil, operationError("members", "", err)
	}

	members := make([]nodeclient.Member, 0, len(resp.Members))

	for _, m := range resp.Members {
		members = append(members, nodeclient.Member{
			ID:         m.ID,
			Name:       m.Name,
			PeerURLs:   m.PeerURLs,
			ClientURLs: m.ClientURLs,
		})
	}

	return members, nil
}

func operationError(op, key string, err error) error {
	return &nodeclient.OperationError{
		Op:    op,
		Key:   key,
		Err:   err,
		Fatal: isFatal(err),
	}
}

// isFatal returns true for errors caused by the request itself rather than
// by the member serving it. Switching to another member does not help here.
func isFatal(err error) bool {
	switch grpcutil.ErrorCode(err) {
	case codes.InvalidArgument,
		codes.FailedPrecondition,
		codes.PermissionDenied,
		codes.Unauthenticated,
		codes.OutOfRange,
		codes.Unimplemented,
		codes.Canceled:
		return true
	default:
		return false
	}
}
