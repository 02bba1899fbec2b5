package build

import (
	"path"
	"regexp"
	"sort"
	"strings"
)

// DefaultTarget is the executable name used when none is given.
const DefaultTarget = "a.out"

// Supported describes the languages weaver detects, for error messages.
const Supported = "C (.c), C++ (.cpp, .cxx, .cc, .C), Objective-C (.m, .mm), Go (.go), Rust (.rs or Cargo.toml)"

// Language is the strategy for one toolchain.
type Language interface {
	// Name is the language as shown to users ("c", "c++", "rust", ...).
	Name() string

	// DefaultToolchain returns the compiler and flags used when the user
	// gives none. Some toolchains embed the target name in their flags.
	DefaultToolchain(target string) Toolchain

	// ObjectPath derives the build artifact for one source.
	ObjectPath(source string) string

	// Objects derives the artifacts for all sources. It fails when two
	// sources collide on the same object.
	Objects(sources []string) ([]string, error)

	// EmitRules returns the directory, build and compile rules.
	EmitRules(plan *Plan) []Rule

	// CleanRecipe returns the commands of the clean rule.
	CleanRecipe(plan *Plan) []string

	// EntryPattern finds the program entry point in a source file, or is
	// nil when the entry point is not found by scanning sources.
	EntryPattern() *regexp.Regexp
}

// Toolchain is a compiler and its flags.
type Toolchain struct {
	Compiler string
	Flags    []string
}

// ParseToolchain splits a "compiler flags..." line on whitespace. ok is
// false for a blank line.
func ParseToolchain(line string) (Toolchain, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Toolchain{}, false
	}
	return Toolchain{Compiler: fields[0], Flags: fields[1:]}, true
}

// Line joins the compiler and flags into a single command line.
func (t Toolchain) Line() string {
	return strings.Join(append([]string{t.Compiler}, t.Flags...), " ")
}

// stripExt removes the final extension of a slash path.
func stripExt(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}

// perFileObjects maps every source through derive and rejects collisions.
func perFileObjects(lang string, sources []string, derive func(string) string) ([]string, error) {
	objects := make([]string, len(sources))
	owners := make(map[string][]string, len(sources))
	for i, src := range sources {
		objects[i] = derive(src)
		owners[objects[i]] = append(owners[objects[i]], src)
	}

	var collisions []string
	for obj, srcs := range owners {
		if len(srcs) > 1 {
			collisions = append(collisions, obj)
		}
	}
	if len(collisions) > 0 {
		sort.Strings(collisions)
		return nil, &DuplicateObjectError{
			Language: lang,
			Object:   collisions[0],
			Sources:  owners[collisions[0]],
		}
	}
	return objects, nil
}
