package build

import (
	"path"
	"regexp"
)

// Go builds the whole package with the go tool.
var Go Language = &goLang{}

var goMainPattern = regexp.MustCompile(`(?m)^func\s+main\s*\(\s*\)`)

type goLang struct{}

func (*goLang) Name() string { return "go" }

func (*goLang) DefaultToolchain(string) Toolchain {
	return Toolchain{Compiler: "go", Flags: []string{"build"}}
}

// ObjectPath keeps only the basename without .go. The result names an
// executable-style placeholder, not a file the build produces.
func (*goLang) ObjectPath(source string) string {
	return stripExt(path.Base(source))
}

// Objects fails with *DuplicateObjectError when files in different
// directories share a basename.
func (l *goLang) Objects(sources []string) ([]string, error) {
	return perFileObjects(l.Name(), sources, l.ObjectPath)
}

func (*goLang) EntryPattern() *regexp.Regexp { return goMainPattern }

func (*goLang) EmitRules(*Plan) []Rule {
	return []Rule{{
		Target:  TargetRef,
		Prereqs: []string{"$(SOURCES)"},
		Recipe: []string{
			`@echo "Building Go project..."`,
			"$(CC) -o $(TARGET)",
			`@echo "Successfully built $(TARGET)"`,
		},
	}}
}

func (*goLang) CleanRecipe(*Plan) []string {
	return []string{"rm -f $(TARGET)"}
}
