package vecmap

import "errors"

var (
	ErrCapacityExceeded  = errors.New("vecmap: capacity exceeded")
	ErrAllocationFailure = errors.New("vecmap: allocation failure")

	ErrInvalidCursor = errors.New("vecmap: cursor invalidated by mutation")
	ErrEndCursor     = errors.New("vecmap: dereferencing end cursor")
)
