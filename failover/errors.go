package failover

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEligibleNodes is matched by a SelectionError.
	ErrNoEligibleNodes = errors.New("no eligible node for failover")

	// ErrClientClosed is returned by operations on a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// ConnectionError is returned when a connection to a node cannot be established,
// either during bootstrap or during failover.
type ConnectionError struct {
	Node Node
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Node, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SelectionError is returned when failover is requested but every known node
// shares the host of the current one. Cause holds the operation error that
// triggered the failover, if any.
type SelectionError struct {
	Current Node
	Cause   error
}

func (e *SelectionError) Error() string {
	msg := fmt.Sprintf("%s: current node %s", ErrNoEligibleNodes, e.Current)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (after: %v)", e.Cause)
	}

	return msg
}

func (e *SelectionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNoEligibleNodes}
	}

	return []error{ErrNoEligibleNodes, e.Cause}
}
