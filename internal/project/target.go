package project

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/simonhull/firebird-suite/weaver/internal/build"
	"github.com/simonhull/firebird-suite/weaver/internal/classify"
)

// Chooser asks the user to pick one of several entry-point files. ok is
// false when no valid choice was made.
type Chooser func(candidates []string) (index int, ok bool)

// TargetGuess is an executable name derived from the project.
type TargetGuess struct {
	Name       string
	From       string   // file the name was taken from, empty for the default
	Candidates []string // entry-point files found by scanning
	Warning    string   // set when the default name was used as a fallback
}

// GuessTarget derives the executable name for sel. Go projects use their
// module path and cargo projects their package name. Otherwise the sources
// are scanned for an entry point: one candidate names the target, several
// are offered to choose (which may be nil), and none leave build.DefaultTarget.
func GuessTarget(root string, sel *build.Selection, choose Chooser) (*TargetGuess, error) {
	switch sel.Language {
	case build.Go:
		if mod, err := DetectModule(root); err == nil {
			return &TargetGuess{Name: mod.Binary(), From: "go.mod"}, nil
		}
	case build.Cargo:
		manifest := rootManifest(sel.Sources)
		crate, err := ReadCrate(filepath.Join(root, filepath.FromSlash(manifest)))
		if err != nil {
			return nil, err
		}
		if crate.Name == "" {
			return &TargetGuess{
				Name:    build.DefaultTarget,
				Warning: fmt.Sprintf("%s has no package name, using %s", manifest, build.DefaultTarget),
			}, nil
		}
		return &TargetGuess{Name: crate.Name, From: manifest}, nil
	}

	candidates, err := FindEntryPoints(root, sel)
	if err != nil {
		return nil, err
	}

	guess := &TargetGuess{Name: build.DefaultTarget, Candidates: candidates}
	switch len(candidates) {
	case 0:
		guess.Warning = fmt.Sprintf("no entry point found, using %s", build.DefaultTarget)
	case 1:
		guess.Name, guess.From = targetName(candidates[0]), candidates[0]
	default:
		if choose == nil {
			guess.Warning = fmt.Sprintf("%d entry points found, using %s", len(candidates), build.DefaultTarget)
			break
		}
		i, ok := choose(candidates)
		if !ok || i < 0 || i >= len(candidates) {
			guess.Warning = fmt.Sprintf("no entry point chosen, using %s", build.DefaultTarget)
			break
		}
		guess.Name, guess.From = targetName(candidates[i]), candidates[i]
	}
	return guess, nil
}

// FindEntryPoints returns the selected sources that define the program's
// entry point, in source order. Languages without an entry pattern have
// no candidates.
func FindEntryPoints(root string, sel *build.Selection) ([]string, error) {
	pattern := sel.Language.EntryPattern()
	if pattern == nil {
		return nil, nil
	}

	var found []string
	for _, src := range sel.Sources {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(src)))
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", src, err)
		}
		if pattern.Match(stripComments(data)) {
			found = append(found, src)
		}
	}
	return found, nil
}

// stripComments blanks out line comments so a commented-out main does not
// count. Block comments are left alone.
func stripComments(data []byte) []byte {
	if !bytes.Contains(data, []byte("//")) {
		return data
	}
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if j := bytes.Index(line, []byte("//")); j >= 0 {
			lines[i] = line[:j]
		}
	}
	return bytes.Join(lines, []byte("\n"))
}

// rootManifest returns the Cargo.toml at the project root, or the first
// manifest found when the root has none.
func rootManifest(manifests []string) string {
	for _, m := range manifests {
		if m == classify.CargoManifest {
			return m
		}
	}
	return manifests[0]
}

func targetName(source string) string {
	base := path.Base(source)
	return strings.TrimSuffix(base, path.Ext(base))
}
