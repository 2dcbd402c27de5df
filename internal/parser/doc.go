// Package parser builds an ast.Doc from a lexer by recursive descent.
//
// Parsing is fail fast: the first ungrammatical token stops the parse and
// is reported as a *SyntaxError. The parser performs no semantic checks;
// duplicate names are the checker's business.
package parser
