package tgf

import "errors"

var (
	// ErrParse marks a line that is neither a valid node nor a valid edge
	// record. Such lines are skipped with a warning, never fatal.
	ErrParse = errors.New("tgf: unparseable line")

	// ErrOutOfOrderNode marks a node line whose index is not the next
	// expected one. The line is skipped with a warning; subsequent node
	// lines are skipped until the expected index appears. This mirrors the
	// strictly-ascending requirement of the format as consumed here; an
	// indirect index map would lift it but would also silently accept
	// files this implementation is meant to flag.
	ErrOutOfOrderNode = errors.New("tgf: node index out of order")

	// ErrNotAPoint marks a node line whose WKT label parses to something
	// other than a Point. The node is skipped with a warning.
	ErrNotAPoint = errors.New("tgf: node label is not a point")
)
