package builder

import "errors"

// ErrUnsupportedKind indicates a primitive of an unknown Kind reached the
// builder, which means the geometry model grew a variant the builder was
// never taught about.
var ErrUnsupportedKind = errors.New("builder: unsupported geometry kind")
