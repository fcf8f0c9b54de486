package nodeclient

import "context"

// Member is a cluster member as reported by the store.
type Member struct {
	ID         uint64
	Name       string
	PeerURLs   []string
	ClientURLs []string
}

type clusterClient interface {
	// Members returns the membership list as seen by the connected node.
	Members(ctx context.Context) ([]Member, error)
}
