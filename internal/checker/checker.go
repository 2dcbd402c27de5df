// Package checker validates name uniqueness in a parsed Doc.
//
// Data type and constructor names share one namespace per document, since
// every one of them becomes a generated type. The single exception is a
// data type with one constructor of the same name (`Whatever = Whatever`),
// which generates a single class. All collisions are reported in one pass.
package checker

import (
	"strings"

	"adtc/internal/ast"
)

// Result is the outcome of checking one Doc.
type Result struct {
	Doc      *ast.Doc
	Findings FindingSet
}

// OK reports whether the Doc can be emitted.
func (r Result) OK() bool { return len(r.Findings) == 0 }

// Err returns a *SemanticError for a failed check, or nil.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &SemanticError{SrcInfo: r.Doc.SrcInfo, Findings: r.Findings}
}

// Rule adds findings that depend on how doc is rendered, such as names a
// back end derives from the declared ones.
type Rule func(doc *ast.Doc, findings FindingSet)

// Check inspects doc without modifying it. rules run after the built-in
// checks and add to the same set.
func Check(doc *ast.Doc, rules ...Rule) Result {
	findings := make(FindingSet)

	seen := make(map[string]struct{})
	declare := func(name string) {
		if _, dup := seen[name]; dup {
			findings.Add(Finding{Kind: DuplicateName, Name: name})
			return
		}
		seen[name] = struct{}{}
	}

	for _, dt := range doc.DataTypes {
		declare(dt.Name)
		checkUnique(findings, DuplicateTypeParam, dt.Name, dt.TypeParams)
		checkShadowing(findings, dt)
		for _, c := range dt.Constructors {
			if !(dt.IsRecord() && c.Name == dt.Name) {
				declare(c.Name)
			}
			fields := make([]string, len(c.Args))
			for i, a := range c.Args {
				fields[i] = a.Name
			}
			checkUnique(findings, DuplicateField, c.Name, fields)
		}
	}
	for _, rule := range rules {
		rule(doc, findings)
	}
	return Result{Doc: doc, Findings: findings}
}

// checkShadowing reports type parameters spelled like the data type or one
// of its constructors: inside the generated types the parameter would hide
// them.
func checkShadowing(findings FindingSet, dt *ast.DataType) {
	for _, p := range dt.TypeParams {
		shadows := p == dt.Name
		for _, c := range dt.Constructors {
			shadows = shadows || p == c.Name
		}
		if shadows {
			findings.Add(Finding{Kind: ShadowingTypeParam, Scope: dt.Name, Name: p})
		}
	}
}

func checkUnique(findings FindingSet, kind FindingKind, scope string, names []string) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			findings.Add(Finding{Kind: kind, Scope: scope, Name: n})
		}
		seen[n] = struct{}{}
	}
}

// SemanticError aggregates the findings of one Doc.
type SemanticError struct {
	SrcInfo  string
	Findings FindingSet
}

func (e *SemanticError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.SrcInfo)
	sb.WriteString(": ")
	for i, f := range e.Findings.Sorted() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(f.Message())
	}
	return sb.String()
}
