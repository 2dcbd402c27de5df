package lexer

import "adtc/internal/token"

type Options struct {
	// Table classifies reserved words. nil means only the language's own
	// keywords and primitive type names are reserved.
	Table *token.Table
}
