package build

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Well-known rule targets.
const (
	TargetRef         = "$(TARGET)"
	DirectoriesTarget = "directories"
	CleanTarget       = "clean"
	HelpTarget        = "help"
)

// Variable is a Makefile variable assignment.
type Variable struct {
	Name  string
	Value string
}

// Rule is one Makefile rule. Prerequisites may reference variables.
type Rule struct {
	Comment string
	Target  string
	Prereqs []string
	Recipe  []string
	Phony   bool
}

// RuleSet is a complete, ordered Makefile.
type RuleSet struct {
	Variables   []Variable
	Rules       []Rule
	DefaultGoal string

	// Warnings describe degraded results, such as nothing to build.
	Warnings []string
}

// Variable returns the value of a variable.
func (rs *RuleSet) Variable(name string) (string, bool) {
	for _, v := range rs.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Rule returns the rule for target.
func (rs *RuleSet) Rule(target string) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.Target == target {
			return r, true
		}
	}
	return Rule{}, false
}

// Phony lists the targets that do not name files, in rule order.
func (rs *RuleSet) Phony() []string {
	var phony []string
	for _, r := range rs.Rules {
		if r.Phony {
			phony = append(phony, r.Target)
		}
	}
	return phony
}

var varRef = regexp.MustCompile(`^\$\(([A-Za-z_][A-Za-z0-9_]*)\)$`)

// Expand replaces whole-token variable references with the variable's
// whitespace-separated words, the way make expands a prerequisite list.
func (rs *RuleSet) Expand(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		m := varRef.FindStringSubmatch(tok)
		if m == nil {
			out = append(out, tok)
			continue
		}
		if v, ok := rs.Variable(m[1]); ok {
			out = append(out, strings.Fields(v)...)
		}
	}
	return out
}

// Validate checks that every compile rule's object is a prerequisite of the
// link rule and that every object directory is created before the object
// is built, either by the directories rule or inline in its recipe.
func (rs *RuleSet) Validate() error {
	link, ok := rs.Rule(TargetRef)
	if !ok {
		return nil
	}
	prereqs := make(map[string]bool)
	for _, p := range rs.Expand(link.Prereqs) {
		prereqs[p] = true
	}

	created := make(map[string]bool)
	if dirs, ok := rs.Rule(DirectoriesTarget); ok && prereqs[DirectoriesTarget] {
		for _, line := range dirs.Recipe {
			created[strings.TrimPrefix(line, "@mkdir -p ")] = true
		}
	}

	for _, r := range rs.Rules {
		if !isCompileRule(r) {
			continue
		}
		if !prereqs[r.Target] {
			return fmt.Errorf("object %s is not a prerequisite of %s", r.Target, TargetRef)
		}
		dir := path.Dir(r.Target)
		if dir == "." || created[dir] {
			continue
		}
		if !containsLine(r.Recipe, "@mkdir -p "+dir) {
			return fmt.Errorf("directory %s of object %s is never created", dir, r.Target)
		}
	}
	return nil
}

// isCompileRule reports whether r builds an object from a single source.
func isCompileRule(r Rule) bool {
	return !r.Phony && r.Target != TargetRef && strings.HasSuffix(r.Target, ".o")
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
