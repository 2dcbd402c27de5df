package driver

import (
	"fmt"

	"adtc/internal/checker"
	"adtc/internal/diag"
	"adtc/internal/lexer"
	"adtc/internal/parser"
	"adtc/internal/source"
	"adtc/internal/token"
)

func syntaxDiagnostic(err *parser.SyntaxError) diag.Diagnostic {
	msg := fmt.Sprintf("expected %s but found %s", err.Expected, err.Found)
	return diag.NewError(diag.SynUnexpectedToken, err.Span, msg)
}

var findingCodes = map[checker.FindingKind]diag.Code{
	checker.DuplicateName:      diag.SemaDuplicateName,
	checker.DuplicateField:     diag.SemaDuplicateField,
	checker.DuplicateTypeParam: diag.SemaDuplicateTypeParam,
	checker.ShadowingTypeParam: diag.SemaShadowingTypeParam,
	checker.GeneratedNameClash: diag.SemaGeneratedNameClash,
}

// occurrences maps identifier text to its spans in source order.
type occurrences map[string][]source.Span

// identOccurrences re-lexes file. The AST carries no positions, so a
// finding is located through the identifiers that spell its name.
func identOccurrences(file *source.File, table *token.Table) occurrences {
	occ := make(occurrences)
	lx := lexer.New(file, lexer.Options{Table: table})
	for tok := lx.Next(); tok.Kind != token.EOF; tok = lx.Next() {
		if tok.IsIdent() {
			occ[tok.Text] = append(occ[tok.Text], tok.Span)
		}
	}
	return occ
}

// findingDiagnostics converts findings in sorted order. The primary span
// is the second spelling of the name, with a note on the first.
func findingDiagnostics(findings checker.FindingSet, file source.FileID, occ occurrences) []diag.Diagnostic {
	sorted := findings.Sorted()
	out := make([]diag.Diagnostic, 0, len(sorted))
	for _, f := range sorted {
		spans := occ[f.Name]
		primary := source.Span{File: file}
		switch {
		case len(spans) > 1:
			primary = spans[1]
		case len(spans) == 1:
			primary = spans[0]
		}
		d := diag.NewError(findingCodes[f.Kind], primary, f.Message())
		if len(spans) > 1 {
			d = d.WithNote(spans[0], fmt.Sprintf("%s also appears here", f.Name))
		}
		out = append(out, d)
	}
	return out
}
