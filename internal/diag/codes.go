package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	LexUnknownToken Code = 1001

	SynUnexpectedToken Code = 2001

	SemaDuplicateName      Code = 3001
	SemaDuplicateField     Code = 3002
	SemaDuplicateTypeParam Code = 3003
	SemaShadowingTypeParam Code = 3004
	SemaGeneratedNameClash Code = 3005

	IOLoadFileError Code = 4001
	IOEmitError     Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexUnknownToken:        "Unrecognized token",
	SynUnexpectedToken:     "Unexpected token",
	SemaDuplicateName:      "Duplicate data type or constructor name",
	SemaDuplicateField:     "Duplicate field name",
	SemaDuplicateTypeParam: "Duplicate type parameter",
	SemaShadowingTypeParam: "Type parameter hides a type",
	SemaGeneratedNameClash: "Name clashes with generated code",
	IOLoadFileError:        "I/O load file error",
	IOEmitError:            "I/O emit error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
