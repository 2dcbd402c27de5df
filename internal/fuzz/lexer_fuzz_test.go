package fuzztests

import (
	"testing"

	"adtc/internal/lexer"
	"adtc/internal/source"
	"adtc/internal/token"
)

var javaTable = token.NewTable("class", "public", "void", "while")

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.adt", input))
		lx := lexer.New(file, lexer.Options{Table: javaTable})

		var prevEnd uint32
		for i := 0; ; i++ {
			if i > len(file.Content)+1 {
				t.Fatalf("lexer produced more tokens than input bytes")
			}
			tok := lx.Next()
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %q at %v overlaps the previous token", tok.Text, tok.Span)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
			if tok.Text == "" {
				t.Fatalf("empty %s token at %v", tok.Kind, tok.Span)
			}
		}
		if next := lx.Next(); next.Kind != token.EOF {
			t.Fatalf("lexer resumed after EOF with %s", next.Kind)
		}
	})
}
