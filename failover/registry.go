package failover

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/maxpoletaev/kvdns/internal/generic"
	"github.com/maxpoletaev/kvdns/nodeclient"
)

// AddrSource selects which member URLs are used to build the registry.
type AddrSource uint8

const (
	// PeerURLs uses the first peer URL of each member.
	PeerURLs AddrSource = iota + 1

	// ClientURLs uses the first client URL of each member.
	ClientURLs
)

func (s AddrSource) String() string {
	switch s {
	case PeerURLs:
		return "peer"
	case ClientURLs:
		return "client"
	default:
		return ""
	}
}

// ParseAddrSource converts "peer" or "client" to an AddrSource.
func ParseAddrSource(s string) (AddrSource, error) {
	switch s {
	case "peer":
		return PeerURLs, nil
	case "client":
		return ClientURLs, nil
	default:
		return 0, fmt.Errorf("unknown address source %q", s)
	}
}

var errEmptyRegistry = errors.New("no cluster nodes")

// Registry is an immutable ordered set of cluster nodes.
type Registry struct {
	nodes []Node
}

// NewRegistry creates a registry from the given nodes. Duplicates are dropped
// keeping the first occurrence. At least one node is required.
func NewRegistry(nodes ...Node) (*Registry, error) {
	unique := make([]Node, 0, len(nodes))

	for _, n := range nodes {
		if !slices.Contains(unique, n) {
			unique = append(unique, n)
		}
	}

	if len(unique) == 0 {
		return nil, errEmptyRegistry
	}

	return &Registry{nodes: unique}, nil
}

// registryFromMembers builds the registry from the membership list reported by
// the store. Members that have no URL of the requested kind (e.g. learners that
// have not started yet) are skipped.
func registryFromMembers(members []nodeclient.Member, source AddrSource) (*Registry, error) {
	nodes := make([]Node, 0, len(members))

	for _, m := range members {
		urls := m.PeerURLs
		if source == ClientURLs {
			urls = m.ClientURLs
		}

		if len(urls) == 0 {
			continue
		}

		node, err := ParseURL(urls[0])
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", m.Name, err)
		}

		nodes = append(nodes, node)
	}

	return NewRegistry(nodes...)
}

// Nodes returns a copy of the registered nodes in their original order.
func (r *Registry) Nodes() []Node {
	return slices.Clone(r.nodes)
}

func (r *Registry) Len() int {
	return len(r.nodes)
}

func (r *Registry) Contains(n Node) bool {
	return slices.Contains(r.nodes, n)
}

// Eligible returns the nodes that can replace the current one, that is, the
// nodes located on a different host.
func (r *Registry) Eligible(current Node) []Node {
	return generic.Filter(r.nodes, func(n Node) bool {
		return n.Host != current.Host
	})
}
