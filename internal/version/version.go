package version

import "github.com/fatih/color"

// Build-time identity of the silica CLI; the ldflags of a release build
// override the zero values.

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"

	// GitCommit is the commit hash of the build, when known.
	GitCommit = ""

	// BuildDate is the ISO-8601 build date, when known.
	BuildDate = ""
)
