// Package fuzztests houses Go fuzz harnesses for the front end of adtc
// (source -> lexer -> parser -> printer). They guard against panics and
// hangs on arbitrary input and check that printing a parsed document and
// parsing it again yields the same document.
package fuzztests
