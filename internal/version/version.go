package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the adtc CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the compiler. It is embedded in
	// every generated unit, so it carries no colour codes.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders v with one colour per dotted component. Anything after
// the patch number keeps the patch colour.
func Colored(v string) string {
	parts := strings.SplitN(v, ".", 3)
	palette := []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor}
	for i, p := range parts {
		parts[i] = palette[i].Sprint(p)
	}
	return strings.Join(parts, ".")
}
