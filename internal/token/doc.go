// Package token defines lexical token kinds and the reserved-word table of
// the ADT description language.
// Invariants:
//   - Token.Text is the exact source text of the token; EOF carries "<EOF>".
//   - Token.Line is the 1-based line on which the token ended.
//   - A Table is immutable once built; the lexer only reads it.
//   - Words reserved by the target language are classified as Reserved (or
//     as a primitive kind) so that the grammar rejects them as names.
package token
