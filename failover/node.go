package failover

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// Node is a network address of a cluster member. Only Host is taken into
// account when choosing a failover target, so two nodes on the same host are
// never considered alternatives to each other.
type Node struct {
	Host string
	Port int
}

// Addr returns the node address in the host:port form.
func (n Node) Addr() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
}

func (n Node) String() string {
	return n.Addr()
}

// ParseAddr parses a host:port pair.
func ParseAddr(addr string) (Node, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return Node{}, fmt.Errorf("invalid node address %q: %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Node{}, fmt.Errorf("invalid port in node address %q", addr)
	}

	if host == "" {
		return Node{}, fmt.Errorf("empty host in node address %q", addr)
	}

	return Node{Host: host, Port: port}, nil
}

// ParseURL extracts the node address from a member URL of the form
// scheme://host:port, as reported in the store membership list.
func ParseURL(rawURL string) (Node, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Node{}, fmt.Errorf("invalid member url %q: %w", rawURL, err)
	}

	if u.Host == "" {
		return Node{}, fmt.Errorf("member url %q has no host", rawURL)
	}

	return ParseAddr(u.Host)
}
