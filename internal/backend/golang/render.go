package golang

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"adtc/internal/ast"
)

type renderer struct {
	buf     *bytes.Buffer
	types   typeMapper
	needFmt bool
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.buf, format, args...)
}

func (r *renderer) record(dt *ast.DataType) {
	c := dt.Constructors[0]
	decl := typeParamDecl(dt.TypeParams)
	self := dt.Name + typeArgs(dt.TypeParams)

	r.printf("\n// %s is a record.\n", dt.Name)
	r.structDecl(dt.Name, decl, c)
	r.constructor(c, dt.TypeParams, dt.Name, self)
	r.stringer(dt.Name, dt.TypeParams, c)
}

func (r *renderer) variant(dt *ast.DataType) {
	decl := typeParamDecl(dt.TypeParams)
	args := typeArgs(dt.TypeParams)
	self := dt.Name + args
	marker := "is" + dt.Name

	names := make([]string, len(dt.Constructors))
	for i, c := range dt.Constructors {
		names[i] = c.Name
	}
	r.printf("\n// %s is one of %s.\n", dt.Name, strings.Join(names, ", "))
	r.printf("type %s%s interface {\n\t%s()\n}\n", dt.Name, decl, marker)

	for _, c := range dt.Constructors {
		r.printf("\n// %s is a %s.\n", c.Name, dt.Name)
		r.structDecl(c.Name, decl, c)
		r.printf("\nfunc (%s%s) %s() {}\n", c.Name, args, marker)
		r.constructor(c, dt.TypeParams, c.Name, self)
		r.stringer(c.Name, dt.TypeParams, c)
	}

	r.match(dt, names)
}

func (r *renderer) structDecl(name, decl string, c *ast.Constructor) {
	if len(c.Args) == 0 {
		r.printf("type %s%s struct{}\n", name, decl)
		return
	}
	r.printf("type %s%s struct {\n", name, decl)
	for _, a := range c.Args {
		r.printf("\t%s %s\n", exported(a.Name), r.types.goType(a.Type))
	}
	r.printf("}\n")
}

// constructor writes New<Ctor>, returning result and building the struct
// impl. Parameters are renamed where they would hide impl or a type
// parameter inside the body.
func (r *renderer) constructor(c *ast.Constructor, params []string, impl, result string) {
	taken := nameSet(params, []string{impl})
	decls := make([]string, len(c.Args))
	inits := make([]string, len(c.Args))
	for i, a := range c.Args {
		p := fresh(a.Name, taken)
		decls[i] = p + " " + r.types.goType(a.Type)
		inits[i] = exported(a.Name) + ": " + p
	}
	r.printf("\n// New%s builds a %s.\n", c.Name, c.Name)
	r.printf("func New%s%s(%s) %s {\n", c.Name, typeParamDecl(params), strings.Join(decls, ", "), result)
	r.printf("\treturn %s%s{%s}\n}\n", impl, typeArgs(params), strings.Join(inits, ", "))
}

func (r *renderer) stringer(name string, params []string, c *ast.Constructor) {
	recv := name + typeArgs(params)
	if len(c.Args) == 0 {
		r.printf("\nfunc (%s) String() string {\n\treturn %q\n}\n", recv, c.Name)
		return
	}
	x := fresh("x", nameSet(params, []string{"fmt"}))
	verbs := make([]string, len(c.Args))
	vals := make([]string, len(c.Args))
	for i, a := range c.Args {
		verbs[i] = a.Name + " = %v"
		vals[i] = x + "." + exported(a.Name)
	}
	format := c.Name + "(" + strings.Join(verbs, ", ") + ")"
	r.needFmt = true
	r.printf("\nfunc (%s %s) String() string {\n\treturn fmt.Sprintf(%q, %s)\n}\n", x, recv, format, strings.Join(vals, ", "))
}

// match writes Match<Type>, calling the handler of the variant held by v.
// Its own identifiers avoid every name the signature and body refer to.
func (r *renderer) match(dt *ast.DataType, ctors []string) {
	r.needFmt = true
	args := typeArgs(dt.TypeParams)
	taken := nameSet(dt.TypeParams, ctors, []string{dt.Name, "fmt", "panic"})
	res := fresh("R", taken)
	v := fresh("v", taken)
	x := fresh("x", taken)
	handlers := make([]string, len(ctors))
	decls := make([]string, len(ctors))
	for i, c := range ctors {
		handlers[i] = fresh("on"+c, taken)
		decls[i] = fmt.Sprintf("%s func(%s%s) %s", handlers[i], c, args, res)
	}
	r.printf("\n// Match%s calls the handler for the variant held by %s.\n", dt.Name, v)
	r.printf("func Match%s%s(%s %s%s, %s) %s {\n", dt.Name, typeParamDecl(dt.TypeParams, res), v, dt.Name, args, strings.Join(decls, ", "), res)
	r.printf("\tswitch %s := %s.(type) {\n", x, v)
	for i, c := range ctors {
		r.printf("\tcase %s%s:\n\t\treturn %s(%s)\n", c, args, handlers[i], x)
	}
	r.printf("\t}\n")
	r.printf("\tpanic(fmt.Sprintf(\"unexpected %s variant %%T\", %s))\n}\n", dt.Name, v)
}

// nameSet collects names already bound where a generated identifier goes.
func nameSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, l := range lists {
		for _, n := range l {
			set[n] = true
		}
	}
	return set
}

// fresh returns base, or base with the smallest numeric suffix that is not
// in taken, and marks the result taken.
func fresh(base string, taken map[string]bool) string {
	name := base
	for i := 1; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	taken[name] = true
	return name
}
