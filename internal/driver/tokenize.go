package driver

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"adtc/internal/diag"
	"adtc/internal/lexer"
	"adtc/internal/source"
	"adtc/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path with the reserved words of the selected back end.
// Unrecognized tokens are reported as warnings; they only become errors
// when the parser meets them.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load source %q", path)
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())

	lx := lexer.New(file, lexer.Options{Table: s.table})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.Unknown {
			bag.Add(diag.New(diag.SevWarning, diag.LexUnknownToken, tok.Span,
				fmt.Sprintf("unrecognized token %q", tok.Text)))
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
