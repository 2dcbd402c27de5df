package java

import (
	"adtc/internal/ast"
	"adtc/internal/checker"
)

// Member types nested in every variant base class.
var visitorTypes = []string{"Visitor", "VisitorWithDefault", "VoidVisitor", "VoidVisitorWithDefault"}

// CheckNames reports names of variant data types that collide with the
// visitor interfaces nested in the generated base class.
func (*Backend) CheckNames(doc *ast.Doc, findings checker.FindingSet) {
	for _, dt := range doc.DataTypes {
		if dt.IsRecord() {
			continue
		}
		names := []string{dt.Name}
		names = append(names, dt.TypeParams...)
		for _, c := range dt.Constructors {
			names = append(names, c.Name)
		}
		for _, n := range names {
			for _, v := range visitorTypes {
				if n == v {
					findings.Add(checker.Finding{
						Kind:  checker.GeneratedNameClash,
						Scope: dt.Name,
						Name:  n,
						With:  "the generated " + v + " type",
					})
				}
			}
		}
	}
}
