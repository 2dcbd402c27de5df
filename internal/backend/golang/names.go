package golang

import (
	"adtc/internal/ast"
	"adtc/internal/checker"
)

// Package-level identifiers the generated code refers to.
var referenced = map[string]string{
	"fmt":   "the fmt package imported by generated code",
	"panic": "the builtin panic called by generated code",
}

// CheckNames reports declared names that collide once rendered as Go:
// exported field names, the String method, the New and Match functions
// and the identifiers the generated code refers to.
func (*Backend) CheckNames(doc *ast.Doc, findings checker.FindingSet) {
	clash := func(scope, name, with string) {
		findings.Add(checker.Finding{Kind: checker.GeneratedNameClash, Scope: scope, Name: name, With: with})
	}

	// Types declared at package level, by name.
	types := make(map[string]bool)
	for _, dt := range doc.DataTypes {
		types[dt.Name] = true
		if !dt.IsRecord() {
			for _, c := range dt.Constructors {
				types[c.Name] = true
			}
		}
	}

	for _, dt := range doc.DataTypes {
		if with, ok := referenced[dt.Name]; ok {
			clash("", dt.Name, with)
		}
		for _, p := range dt.TypeParams {
			if with, ok := referenced[p]; ok {
				clash(dt.Name, p, with)
			}
		}
		if fn := "Match" + dt.Name; !dt.IsRecord() && types[fn] {
			clash("", fn, "the function generated to match "+dt.Name)
		}
		for _, c := range dt.Constructors {
			if with, ok := referenced[c.Name]; ok && !dt.IsRecord() {
				clash("", c.Name, with)
			}
			if fn := "New" + c.Name; types[fn] {
				clash("", fn, "the function generated to build "+c.Name)
			}
			checkFields(c, clash)
		}
	}
}

// checkFields reports fields whose exported Go names collide with each
// other or with the String method of the struct.
func checkFields(c *ast.Constructor, clash func(scope, name, with string)) {
	seen := make(map[string]string, len(c.Args))
	for _, a := range c.Args {
		field := exported(a.Name)
		if field == "String" {
			clash(c.Name, a.Name, "the generated String method")
		}
		if prev, dup := seen[field]; dup && prev != a.Name {
			clash(c.Name, a.Name, "field "+prev+", both generate the Go field "+field)
		}
		seen[field] = a.Name
	}
}
