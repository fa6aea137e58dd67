package panzoom

import "errors"

// Common errors returned by Engine operations. Only attachment can fail;
// gesture handling never returns errors (invalid input degrades to no
// visual change instead).
var (
	// ErrInvalidSize is returned when a wrapper or content measurement
	// has a non-positive dimension.
	ErrInvalidSize = errors.New("panzoom: invalid size")
)
