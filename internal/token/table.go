package token

// Table maps reserved words to token kinds. A Table is built once per run
// and shared read-only by every lexer; it is never mutated after NewTable.
type Table struct {
	words map[string]Kind
}

var dslWords = map[string]Kind{
	"package": KwPackage,
	"import":  KwImport,

	"boolean": KwBoolean,
	"byte":    KwByte,
	"char":    KwChar,
	"double":  KwDouble,
	"float":   KwFloat,
	"int":     KwInt,
	"long":    KwLong,
	"short":   KwShort,
}

// NewTable builds a table holding the language's own keywords, the
// primitive type names, and every word in reserved classified as Reserved.
// Language keywords win over a reserved word with the same spelling.
func NewTable(reserved ...string) *Table {
	words := make(map[string]Kind, len(dslWords)+len(reserved))
	for _, w := range reserved {
		words[w] = Reserved
	}
	for w, k := range dslWords {
		words[w] = k
	}
	return &Table{words: words}
}

// Lookup returns the kind of a reserved word. Lookup is case sensitive.
func (t *Table) Lookup(word string) (Kind, bool) {
	if t == nil {
		k, ok := dslWords[word]
		return k, ok
	}
	k, ok := t.words[word]
	return k, ok
}

// Len reports the number of reserved words.
func (t *Table) Len() int {
	if t == nil {
		return len(dslWords)
	}
	return len(t.words)
}
