package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown is any character sequence the language does not recognize.
	// The lexer never fails; the parser rejects Unknown tokens.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a plain identifier.
	Ident
	// DottedIdent represents a dotted identifier such as a.b.c.
	DottedIdent

	KwPackage // package
	KwImport  // import

	KwBoolean // boolean
	KwByte    // byte
	KwChar    // char
	KwDouble  // double
	KwFloat   // float
	KwInt     // int
	KwLong    // long
	KwShort   // short

	// Reserved is a word reserved by the generated-code target language.
	Reserved

	LAngle   // <
	RAngle   // >
	Equals   // =
	LParen   // (
	RParen   // )
	Comma    // ,
	Bar      // |
	LBracket // [
	RBracket // ]
)

var kindNames = [...]string{
	Unknown:     "Unknown",
	EOF:         "EOF",
	Ident:       "Ident",
	DottedIdent: "DottedIdent",
	KwPackage:   "KwPackage",
	KwImport:    "KwImport",
	KwBoolean:   "KwBoolean",
	KwByte:      "KwByte",
	KwChar:      "KwChar",
	KwDouble:    "KwDouble",
	KwFloat:     "KwFloat",
	KwInt:       "KwInt",
	KwLong:      "KwLong",
	KwShort:     "KwShort",
	Reserved:    "Reserved",
	LAngle:      "LAngle",
	RAngle:      "RAngle",
	Equals:      "Equals",
	LParen:      "LParen",
	RParen:      "RParen",
	Comma:       "Comma",
	Bar:         "Bar",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsPrimitive reports whether k is one of the primitive type keywords.
func (k Kind) IsPrimitive() bool {
	return k >= KwBoolean && k <= KwShort
}

// IsPunct reports whether k is a punctuation symbol.
func (k Kind) IsPunct() bool {
	return k >= LAngle && k <= RBracket
}

var punctText = map[Kind]string{
	LAngle:   "<",
	RAngle:   ">",
	Equals:   "=",
	LParen:   "(",
	RParen:   ")",
	Comma:    ",",
	Bar:      "|",
	LBracket: "[",
	RBracket: "]",
}

// Describe renders k the way parse errors name an expected token.
func (k Kind) Describe() string {
	if s, ok := punctText[k]; ok {
		return "'" + s + "'"
	}
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "an identifier"
	case DottedIdent:
		return "a dotted identifier"
	case KwPackage:
		return "'package'"
	case KwImport:
		return "'import'"
	case Reserved:
		return "a reserved word"
	}
	if k.IsPrimitive() {
		return "a primitive type"
	}
	return "an unrecognized token"
}
