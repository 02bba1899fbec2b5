// Package ignore compiles glob-style exclusion patterns into a matcher.
//
// # Pattern Syntax
//
// One pattern per line in the project's ignore file (.weaverignore by
// default). Blank lines and lines starting with "#" are skipped.
//
//   - "*", "?", "[a-z]" and "**" follow shell-glob rules
//   - A pattern ending in "/" excludes a directory, wherever it occurs, and
//     everything beneath it
//   - Any other pattern is matched against the full path, the basename and
//     every single path segment
//   - A leading "/" anchors the pattern at the project root
//   - Matching is case-insensitive
//   - A malformed glob is matched as a literal substring
//
// # Usage
//
//	patterns, found, err := ignore.Load(".weaverignore")
//	if err != nil {
//	    return err // *ignore.ConfigError
//	}
//	m := ignore.Compile(ignore.WithDefaults(patterns))
//	if rule, ok := m.Match("build/gen/out.c"); ok {
//	    fmt.Println("ignored by", rule)
//	}
package ignore
