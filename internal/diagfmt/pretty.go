package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"adtc/internal/diag"
	"adtc/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders every diagnostic of bag (call bag.Sort first) as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <line> | <source line>
//	         | ^~~~
//
// followed by notes in the same shape when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		pos, _ := fs.Resolve(d.Primary)
		file := fs.Get(d.Primary.File)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprintf("%s:%d:%d", file.Path, pos.Line, pos.Col),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeExcerpt(w, p, fs, d.Primary)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			npos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), fs.Get(n.Span.File).Path, npos.Line, npos.Col, n.Msg)
			writeExcerpt(w, p, fs, n.Span)
		}
	}
}

func writeExcerpt(w io.Writer, p palette, fs *source.FileSet, sp source.Span) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" && sp.Empty() {
		return
	}

	num := fmt.Sprintf("%d", start.Line)
	blank := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "  %s %s\n", p.gutter.Sprint(num+" |"), line)

	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(max(int(end.Col)-1, col), len(line))
	}
	fmt.Fprintf(w, "  %s %s%s\n", p.gutter.Sprint(blank+" |"), caretPad(line[:col]), p.caret.Sprint(underline(line[col:endCol])))
}

// caretPad returns whitespace as wide on screen as prefix, keeping tabs.
func caretPad(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func underline(text string) string {
	width := runewidth.StringWidth(text)
	if width <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", width-1)
}
