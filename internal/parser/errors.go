package parser

import (
	"fmt"

	"adtc/internal/source"
)

// SyntaxError describes the first ungrammatical token of a source.
type SyntaxError struct {
	SrcInfo  string
	Line     int
	Col      int
	Expected string
	Found    string
	Span     source.Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: expected %s but found %s", e.SrcInfo, e.Line, e.Expected, e.Found)
}
