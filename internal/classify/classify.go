// Package classify buckets a project's files by source language.
//
// Classify performs one traversal of the project root, assigns each file a
// Category from its name, and drops every path the ignore matcher excludes.
// Excluded paths are returned in Result.Ignored so the caller can report
// them; they are never an error.
package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonhull/firebird-suite/weaver/internal/filesystem"
)

// Category is the kind of source a file contributes.
type Category string

const (
	C            Category = "c"
	CPP          Category = "cpp"
	ObjC         Category = "objc"
	Go           Category = "go"
	RustSource   Category = "rust-source"
	RustManifest Category = "rust-manifest"
)

// Categories lists every category in detection priority order.
var Categories = []Category{C, CPP, ObjC, Go, RustManifest, RustSource}

// CargoManifest is the file name that marks a cargo-driven Rust project.
const CargoManifest = "Cargo.toml"

// CategoryOf classifies a file by name. ok is false for files that are not
// sources of any supported language.
func CategoryOf(name string) (Category, bool) {
	if name == CargoManifest {
		return RustManifest, true
	}

	ext := filepath.Ext(name)
	if ext == ".C" {
		return CPP, true
	}

	switch strings.ToLower(ext) {
	case ".c":
		return C, true
	case ".cpp", ".cxx", ".cc":
		return CPP, true
	case ".m", ".mm":
		return ObjC, true
	case ".go":
		return Go, true
	case ".rs":
		return RustSource, true
	}
	return "", false
}

// SourceFile is a classified file.
type SourceFile struct {
	Path     string // relative to the project root, slash-separated
	Category Category
}

// Buckets maps each category to its paths in traversal order.
type Buckets map[Category][]string

// Count returns the total number of paths across all categories.
func (b Buckets) Count() int {
	n := 0
	for _, paths := range b {
		n += len(paths)
	}
	return n
}

// Matcher decides whether a relative path is excluded and by which pattern.
// *ignore.Matcher satisfies it.
type Matcher interface {
	Match(path string) (string, bool)
}

// IgnoredFile is a classified file removed by an ignore pattern.
type IgnoredFile struct {
	SourceFile
	Pattern string
}

// Skipped is an entry the traversal did not visit.
type Skipped struct {
	Path   string
	Reason string
	Err    error // set when the entry could not be read
}

// Result is the outcome of a classification pass.
type Result struct {
	Buckets Buckets
	Ignored []IgnoredFile
	Skipped []Skipped
}

// Classify walks root once and returns the filtered buckets. A nil matcher
// excludes nothing. Unreadable subdirectories are recorded in
// Result.Skipped; an unreadable root is an error.
func Classify(root string, matcher Matcher) (*Result, error) {
	res := &Result{Buckets: make(Buckets)}
	var files []SourceFile

	opts := filesystem.WalkOptions{
		FollowSymlinks: true,
		OnError: func(path string, err error) error {
			if path == root {
				return err
			}
			res.Skipped = append(res.Skipped, Skipped{Path: relPath(root, path), Reason: err.Error(), Err: err})
			return filesystem.SkipDir
		},
		OnSkip: func(path, reason string) {
			res.Skipped = append(res.Skipped, Skipped{Path: relPath(root, path), Reason: reason})
		},
	}

	err := filesystem.Walk(root, opts, func(path string, _ os.FileInfo) error {
		// link names decide, not their targets
		if cat, ok := CategoryOf(filepath.Base(path)); ok {
			files = append(files, SourceFile{Path: relPath(root, path), Category: cat})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to classify %s: %w", root, err)
	}

	for _, f := range files {
		if matcher != nil {
			if pattern, ignored := matcher.Match(f.Path); ignored {
				res.Ignored = append(res.Ignored, IgnoredFile{SourceFile: f, Pattern: pattern})
				continue
			}
		}
		res.Buckets[f.Category] = append(res.Buckets[f.Category], f.Path)
	}

	return res, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
