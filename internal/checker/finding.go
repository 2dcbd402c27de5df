package checker

import (
	"cmp"
	"fmt"
	"slices"
)

// FindingKind classifies a name collision.
type FindingKind uint8

const (
	// DuplicateName: two data types or constructors share a name.
	DuplicateName FindingKind = iota
	// DuplicateField: a constructor declares two fields with the same name.
	DuplicateField
	// DuplicateTypeParam: a data type declares a type parameter twice.
	DuplicateTypeParam
	// ShadowingTypeParam: a type parameter is spelled like its data type or
	// one of its constructors.
	ShadowingTypeParam
	// GeneratedNameClash: a declared name collides with a name a back end
	// generates.
	GeneratedNameClash
)

func (k FindingKind) String() string {
	switch k {
	case DuplicateName:
		return "duplicate-name"
	case DuplicateField:
		return "duplicate-field"
	case DuplicateTypeParam:
		return "duplicate-type-param"
	case ShadowingTypeParam:
		return "shadowing-type-param"
	case GeneratedNameClash:
		return "generated-name-clash"
	default:
		return "unknown"
	}
}

// Finding is one semantic violation. Findings are plain values: two
// detections of the same collision compare equal.
type Finding struct {
	Kind  FindingKind
	Scope string // enclosing declaration; "" for the document namespace
	Name  string
	With  string // what Name collides with, for GeneratedNameClash
}

func (f Finding) Message() string {
	switch f.Kind {
	case DuplicateField:
		return fmt.Sprintf("Constructor %s cannot have two fields named %s", f.Scope, f.Name)
	case DuplicateTypeParam:
		return fmt.Sprintf("Data type %s cannot have two type parameters named %s", f.Scope, f.Name)
	case ShadowingTypeParam:
		return fmt.Sprintf("Type parameter %s of %s hides a type of the same name", f.Name, f.Scope)
	case GeneratedNameClash:
		if f.Scope == "" {
			return fmt.Sprintf("%s clashes with %s", f.Name, f.With)
		}
		return fmt.Sprintf("%s in %s clashes with %s", f.Name, f.Scope, f.With)
	default:
		return "Cannot have two declarations named " + f.Name
	}
}

func (f Finding) String() string { return f.Message() }

// FindingSet is a set of findings.
type FindingSet map[Finding]struct{}

func (s FindingSet) Add(f Finding) {
	s[f] = struct{}{}
}

func (s FindingSet) Has(f Finding) bool {
	_, ok := s[f]
	return ok
}

func (s FindingSet) Len() int { return len(s) }

// Sorted returns the findings in a deterministic order.
func (s FindingSet) Sorted() []Finding {
	out := make([]Finding, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Scope, b.Scope),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.With, b.With),
		)
	})
	return out
}
