package nodeclient

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// OperationError is returned when the store rejects an operation on an
// established connection.
type OperationError struct {
	Op    string
	Key   string
	Err   error
	Fatal bool
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether switching to another node cannot help to complete
// the operation. Unknown errors are considered retryable.
func IsFatal(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Fatal
	}

	return false
}
