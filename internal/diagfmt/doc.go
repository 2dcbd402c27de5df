// Package diagfmt renders diagnostics, token streams and syntax trees for
// the command line: a human "pretty" form with source excerpts and carets,
// and machine forms in JSON (and YAML for trees).
package diagfmt
