// Package diag defines the diagnostic model shared by the pipeline phases.
//
// A Diagnostic carries a severity, a stable code, a short message and the
// primary source span it refers to. Notes add secondary context. The
// package performs no formatting or I/O; rendering lives in
// internal/diagfmt and conversion from phase errors lives in the driver.
//
// Keep the data model deterministic: Bag.Sort orders diagnostics by file,
// position, severity and code so output and tests stay stable.
package diag
