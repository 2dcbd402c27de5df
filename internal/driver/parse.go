package driver

import (
	"github.com/cockroachdb/errors"

	"adtc/internal/ast"
	"adtc/internal/backend"
	"adtc/internal/checker"
	"adtc/internal/diag"
	"adtc/internal/lexer"
	"adtc/internal/parser"
	"adtc/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Doc     *ast.Doc // nil after a syntax error
	Bag     *diag.Bag
}

// Parse loads and parses path. A syntax error is recorded in the Bag;
// the returned error is reserved for failures to run at all.
func Parse(path string, opts Options) (*ParseResult, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	return s.parseFile(path)
}

// Check parses path and, when it parses, reports every name collision.
func Check(path string, opts Options) (*ParseResult, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	res, err := s.parseFile(path)
	if err != nil || res.Doc == nil {
		return res, err
	}
	s.check(res.File, res.Doc, res.Bag)
	return res, nil
}

func (s *session) parseFile(path string) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load source %q", path)
	}
	res := &ParseResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Bag:     diag.NewBag(s.opts.maxDiagnostics()),
	}
	res.Doc = s.parse(res.File, res.Bag)
	return res, nil
}

// parse returns nil and records a diagnostic when file is ungrammatical.
func (s *session) parse(file *source.File, bag *diag.Bag) *ast.Doc {
	doc, err := parser.Parse(lexer.New(file, lexer.Options{Table: s.table}))
	if err == nil {
		return doc
	}
	var se *parser.SyntaxError
	if errors.As(err, &se) {
		bag.Add(syntaxDiagnostic(se))
	} else {
		bag.Add(diag.NewError(diag.UnknownCode, source.Span{File: file.ID}, err.Error()))
	}
	return nil
}

// check reports whether doc is free of collisions, recording each one.
func (s *session) check(file *source.File, doc *ast.Doc, bag *diag.Bag) bool {
	res := checker.Check(doc, backend.Rules(s.backend)...)
	if res.OK() {
		return true
	}
	for _, d := range findingDiagnostics(res.Findings, file.ID, identOccurrences(file, s.table)) {
		bag.Add(d)
	}
	return false
}
