package failover

// Observer receives notifications about the client activity. Calls are made
// while the client lock is held and must not block.
type Observer interface {
	// ObserveAttempt is called after each attempt of an operation.
	ObserveAttempt(op string, err error)

	// ObserveFailover is called once a new node has been installed.
	ObserveFailover(from, to Node)

	// ObserveExhausted is called when an operation has failed all attempts.
	ObserveExhausted(op string)
}

type nopObserver struct{}

func (nopObserver) ObserveAttempt(string, error) {}

func (nopObserver) ObserveFailover(Node, Node) {}

func (nopObserver) ObserveExhausted(string) {}
