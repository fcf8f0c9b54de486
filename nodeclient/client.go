package nodeclient

//go:generate mockgen -destination=mock/client_mock.go -package=mock github.com/maxpoletaev/kvdns/nodeclient Conn

import "context"

// Conn is a client to a single member of the store cluster.
type Conn interface {
	storageClient
	clusterClient

	// IsClosed returns true if the connection has been closed and cannot be
	// used anymore.
	IsClosed() bool

	// Close releases the connection. It is safe to call Close more than once.
	Close() error
}

// Dialer is a function that establishes a connection with a cluster member.
type Dialer func(ctx context.Context, addr string) (Conn, error)
