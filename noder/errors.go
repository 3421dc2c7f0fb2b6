package noder

import "errors"

// ErrConvergence indicates the exact (tolerance 0) noder exceeded its
// iteration cap while still discovering new intersection points. The caller
// may retry the same input through a snapping noder (tolerance > 0).
var ErrConvergence = errors.New("noder: exact noding did not converge")
