package java

import (
	"io"
)

// Sink writes generated text and remembers the first write error, so
// emitters can write freely and check once at the end.
type Sink struct {
	w   io.Writer
	err error
}

func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Print(parts ...string) {
	for _, p := range parts {
		if s.err != nil {
			return
		}
		_, s.err = io.WriteString(s.w, p)
	}
}

// Err returns the first write error.
func (s *Sink) Err() error {
	return s.err
}
