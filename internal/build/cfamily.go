package build

import (
	"fmt"
	"path"
	"regexp"
	"sort"
)

// C-family languages compile every source to an object and link them.
var (
	C    Language = &cFamily{name: "c", compiler: "gcc", flags: []string{"-Wall", "-Wextra"}}
	CPP  Language = &cFamily{name: "c++", compiler: "g++", flags: []string{"-Wall", "-Wextra", "-std=c++17"}}
	ObjC Language = &cFamily{name: "objective-c", compiler: "clang", flags: []string{"-Wall", "-Wextra", "-framework", "Foundation"}}
)

var cMainPattern = regexp.MustCompile(`\bint\s+main\s*\(`)

type cFamily struct {
	name     string
	compiler string
	flags    []string
}

func (l *cFamily) Name() string { return l.name }

func (l *cFamily) DefaultToolchain(string) Toolchain {
	return Toolchain{Compiler: l.compiler, Flags: append([]string(nil), l.flags...)}
}

// ObjectPath swaps the extension for .o and keeps the directory.
func (l *cFamily) ObjectPath(source string) string {
	return stripExt(source) + ".o"
}

func (l *cFamily) Objects(sources []string) ([]string, error) {
	return perFileObjects(l.name, sources, l.ObjectPath)
}

func (l *cFamily) EntryPattern() *regexp.Regexp { return cMainPattern }

func (l *cFamily) EmitRules(plan *Plan) []Rule {
	var rules []Rule

	link := Rule{
		Target:  TargetRef,
		Prereqs: []string{"$(OBJECTS)"},
		Recipe: []string{
			`@echo "Linking $(TARGET)..."`,
			"$(CC) $(OBJECTS) -o $(TARGET)",
			`@echo "Successfully built $(TARGET)"`,
		},
	}

	if dirs := objectDirs(plan.Objects); len(dirs) > 0 {
		dirRule := Rule{
			Comment: "Create necessary directories for object files",
			Target:  DirectoriesTarget,
			Phony:   true,
		}
		for _, dir := range dirs {
			dirRule.Recipe = append(dirRule.Recipe, "@mkdir -p "+dir)
		}
		rules = append(rules, dirRule)
		link.Prereqs = []string{DirectoriesTarget, "$(OBJECTS)"}
	}
	rules = append(rules, link)

	for i, src := range plan.Sources {
		obj := plan.Objects[i]
		compile := Rule{
			Target:  obj,
			Prereqs: []string{src},
			Recipe:  []string{fmt.Sprintf(`@echo "Compiling %s..."`, src)},
		}
		if dir := path.Dir(obj); dir != "." {
			compile.Recipe = append(compile.Recipe, "@mkdir -p "+dir)
		}
		compile.Recipe = append(compile.Recipe, fmt.Sprintf("$(CC) -c %s -o %s", src, obj))
		rules = append(rules, compile)
	}

	return rules
}

func (l *cFamily) CleanRecipe(*Plan) []string {
	return []string{"rm -f $(TARGET) $(OBJECTS)"}
}

// objectDirs returns the distinct parent directories of objects, sorted.
func objectDirs(objects []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, obj := range objects {
		dir := path.Dir(obj)
		if dir == "." || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
