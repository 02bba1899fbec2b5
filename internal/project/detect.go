package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/simonhull/firebird-suite/weaver/internal/build"
	"github.com/simonhull/firebird-suite/weaver/internal/classify"
	"github.com/simonhull/firebird-suite/weaver/internal/ignore"
)

// Options configure a detection run.
type Options struct {
	Root       string
	IgnoreFile string // relative to Root unless absolute; empty means ignore.DefaultFileName
	Gitignore  bool   // also exclude what the project's .gitignore excludes
}

// IgnorePath resolves the ignore file location.
func (o Options) IgnorePath() string {
	name := o.IgnoreFile
	if name == "" {
		name = ignore.DefaultFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Root, name)
}

// Rules are the ignore rules in effect for a run.
type Rules struct {
	Matcher  *ignore.Matcher
	Patterns []string
	Path     string // ignore file consulted
	Found    bool   // whether the ignore file exists
	Defaults bool   // whether the built-in patterns are in use
}

// LoadRules reads the ignore file, falling back to the default patterns
// when it is absent or empty. An unreadable ignore file is a
// *ignore.ConfigError.
func LoadRules(opts Options) (*Rules, error) {
	path := opts.IgnorePath()
	loaded, found, err := ignore.Load(path)
	if err != nil {
		return nil, err
	}

	patterns := ignore.WithDefaults(loaded)
	rules := &Rules{
		Matcher:  ignore.Compile(patterns),
		Patterns: patterns,
		Path:     path,
		Found:    found,
		Defaults: len(loaded) == 0,
	}

	if opts.Gitignore {
		lines, err := ignore.LoadGitignore(filepath.Join(opts.Root, ".gitignore"))
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			rules.Matcher = rules.Matcher.WithGitignore(lines)
		}
	}

	return rules, nil
}

// Detection is everything learned about a project.
type Detection struct {
	Root      string
	Rules     *Rules
	Files     *classify.Result
	Selection *build.Selection
	Module    *ModuleInfo // go.mod of a Go project, nil otherwise
	Warnings  []string
}

// Detect loads the ignore rules, classifies the files under opts.Root and
// selects the build language.
//
// When no supported sources remain Detect returns build.ErrNoSourcesDetected
// together with a Detection whose Selection is nil, so callers can still
// report what was ignored.
func Detect(opts Options) (*Detection, error) {
	rules, err := LoadRules(opts)
	if err != nil {
		return nil, err
	}

	files, err := classify.Classify(opts.Root, rules.Matcher)
	if err != nil {
		return nil, err
	}

	det := &Detection{Root: opts.Root, Rules: rules, Files: files}

	sel, err := build.Select(files.Buckets)
	if err != nil {
		return det, err
	}
	det.Selection = sel

	if sel.Language == build.Go {
		mod, err := DetectModule(opts.Root)
		switch {
		case err == nil:
			det.Module = mod
		case errors.Is(err, fs.ErrNotExist):
			det.Warnings = append(det.Warnings, "no go.mod in the project root; go build needs a module (run 'go mod init')")
		default:
			det.Warnings = append(det.Warnings, fmt.Sprintf("ignoring go.mod: %v", err))
		}
	}

	return det, nil
}
