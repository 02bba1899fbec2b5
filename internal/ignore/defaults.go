package ignore

import "strings"

// DefaultFileName is the ignore file looked up in the project root.
const DefaultFileName = ".weaverignore"

// DefaultPatterns are used when the project has no ignore file or the file
// holds no patterns. They cover VCS metadata, editor state and the usual
// build-output directories.
var DefaultPatterns = []string{
	".git/", ".svn/", ".hg/",
	"node_modules/", "vendor/",
	"build/", "dist/", "bin/", "obj/", "target/",
	"tmp/", "temp/",
	".idea/", ".vscode/", ".vs/",
}

// WithDefaults returns patterns, or a copy of DefaultPatterns when
// patterns is empty.
func WithDefaults(patterns []string) []string {
	if len(patterns) > 0 {
		return patterns
	}
	return append([]string(nil), DefaultPatterns...)
}

// DefaultFileContent is the documented ignore file written by
// `weaver ignore init` and, when enabled, by `weaver generate`.
func DefaultFileContent() []byte {
	var b strings.Builder
	b.WriteString(`# weaver ignore file
#
# Files matching any pattern below are left out of the generated Makefile.
# One pattern per line, blank lines and lines starting with # are skipped.
#
#   *.bak         any file named *.bak, in any directory
#   test_*.c      matched against the full path, the file name and each
#                 directory name
#   build/        the directory build, wherever it occurs, and everything
#                 beneath it
#   /experiments/ only the top-level experiments directory
#   src/**/*.c    * stops at a /, ** spans any number of directories
#
# Matching is case-insensitive.

`)
	for _, p := range DefaultPatterns {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return []byte(b.String())
}
