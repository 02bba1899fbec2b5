package ignore

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
)

// GitignoreSource is reported by Match for paths excluded by .gitignore.
const GitignoreSource = "(.gitignore)"

// Rule is one compiled ignore pattern.
type Rule struct {
	Pattern string // as written in the ignore file

	glob     string // lower-cased, without anchor and trailing slash
	dirOnly  bool
	anchored bool
	literal  bool // malformed glob, matched as a substring
}

// Matcher tests slash-separated relative paths against compiled rules.
// The zero value matches nothing.
type Matcher struct {
	rules []Rule
	git   *gitignore.GitIgnore
}

// Compile turns raw patterns into a Matcher. It never fails: patterns that
// are not valid globs fall back to literal substring matching, and patterns
// that are empty after trimming are dropped.
func Compile(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		if r, ok := compileRule(p); ok {
			m.rules = append(m.rules, r)
		}
	}
	return m
}

func compileRule(pattern string) (Rule, bool) {
	r := Rule{Pattern: pattern}

	glob := strings.ToLower(strings.TrimSpace(pattern))
	if strings.HasSuffix(glob, "/") {
		r.dirOnly = true
		glob = strings.TrimRight(glob, "/")
	}
	if strings.HasPrefix(glob, "/") {
		r.anchored = true
		glob = strings.TrimLeft(glob, "/")
	}
	if glob == "" {
		return Rule{}, false
	}

	r.glob = glob
	r.literal = !doublestar.ValidatePattern(glob)
	return r, true
}

// WithGitignore adds the lines of a .gitignore file as an extra exclusion
// layer, evaluated with git's own semantics after the weaver rules.
func (m *Matcher) WithGitignore(lines []string) *Matcher {
	if len(lines) == 0 {
		return m
	}
	m.git = gitignore.CompileIgnoreLines(lines...)
	return m
}

// HasGitignore reports whether a .gitignore layer is active.
func (m *Matcher) HasGitignore() bool {
	return m != nil && m.git != nil
}

// Rules returns the compiled rules in pattern order.
func (m *Matcher) Rules() []Rule {
	return m.rules
}

// Match reports whether path is excluded and, if so, the pattern that
// excluded it. path is relative to the project root and slash-separated.
func (m *Matcher) Match(p string) (string, bool) {
	if m == nil {
		return "", false
	}

	cleaned := cleanPath(p)
	if cleaned == "" {
		return "", false
	}

	norm := strings.ToLower(cleaned)
	for _, r := range m.rules {
		if r.Match(norm) {
			return r.Pattern, true
		}
	}
	// git patterns keep git's case-sensitive semantics
	if m.git != nil && m.git.MatchesPath(cleaned) {
		return GitignoreSource, true
	}
	return "", false
}

// Match reports whether the rule excludes p, which must already be a
// clean, lower-cased relative path.
func (r Rule) Match(p string) bool {
	if r.dirOnly {
		return r.matchDir(p)
	}
	return r.matchFile(p)
}

func (r Rule) matchFile(p string) bool {
	if r.anchored {
		return r.matches(p)
	}
	if r.matches(p) {
		return true
	}
	segments := strings.Split(p, "/")
	// the basename is the last segment
	for _, seg := range segments {
		if r.matches(seg) {
			return true
		}
	}
	return false
}

// matchDir checks every run of whole segments that starts at the beginning
// of the path or after a "/" and ends before a "/" or at the end.
func (r Rule) matchDir(p string) bool {
	if r.literal {
		if r.anchored {
			return strings.HasPrefix(p+"/", r.glob+"/")
		}
		return strings.Contains("/"+p+"/", "/"+r.glob+"/")
	}

	segments := strings.Split(p, "/")
	starts := len(segments)
	if r.anchored {
		starts = 1
	}
	for i := 0; i < starts; i++ {
		for j := i + 1; j <= len(segments); j++ {
			if r.matches(strings.Join(segments[i:j], "/")) {
				return true
			}
		}
	}
	return false
}

func (r Rule) matches(name string) bool {
	if r.literal {
		return strings.Contains(name, r.glob)
	}
	ok, err := doublestar.Match(r.glob, name)
	return err == nil && ok
}

// cleanPath turns p into a clean relative slash path; "" for the root.
func cleanPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}
