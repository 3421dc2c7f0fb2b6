package wkt

import "fmt"

// ParseError describes malformed WKT input:
// the caller skips the record and logs a warning rather than aborting the
// whole stream.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wkt: parse error: %s", e.Msg)
}

func parseErrorf(format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}
