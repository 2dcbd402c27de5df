// Package ast holds the syntax tree of an ADT description.
//
// A Doc is built once by the parser and never mutated afterwards; the
// checker, the printer and every back end only read it. Nodes carry no
// positions, so two trees compare equal when they describe the same types.
package ast
