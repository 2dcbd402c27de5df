// Package target provides the destinations generated units are written to.
//
// A Factory hands out one Target per generated unit, identified by the
// unit's qualified name. The caller owns the Target and must Close it on
// every path; a caller that failed mid-write may Abort instead so that no
// partial unit is published.
package target

import "io"

// Target receives the text of one generated unit.
type Target interface {
	io.Writer
	// Info describes the destination for log messages.
	Info() string
	// Close publishes the unit and releases the target.
	Close() error
}

// Aborter is implemented by targets that can discard a partial unit.
// Abort releases the target like Close but publishes nothing.
type Aborter interface {
	Abort() error
}

// Factory creates targets by qualified unit name.
type Factory interface {
	Create(name string) (Target, error)
}
