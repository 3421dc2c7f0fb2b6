package polygonize

import "errors"

// ErrDefect indicates the edge set was not fully noded: at least one traced
// face ring revisits a node, or fewer face rings were traced than Euler's
// formula gives for the graph. The Result returned alongside this error is
// still populated; the defective faces are included unless WithoutDefective
// was given.
var ErrDefect = errors.New("polygonize: edge set not fully noded")
