package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SkipDir may be returned from WalkOptions.OnError to skip an unreadable
// directory and keep walking.
var SkipDir = fs.SkipDir

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	FollowSymlinks bool // Resolve symbolic links (default: false, links are skipped)

	// OnError is called when a directory cannot be read. Return nil or
	// SkipDir to continue, anything else aborts the walk. When nil, the
	// error aborts the walk.
	OnError func(path string, err error) error

	// OnSkip is called for entries that are deliberately not visited
	// (already-visited directories, dangling links, special files).
	OnSkip func(path, reason string)
}

// Walk traverses a directory tree and calls visitor for every regular file.
// The path passed to visitor is rootPath joined with the file's relative
// path; info describes the resolved file.
//
// Real directories are walked first, in lexical order. Symlinked
// directories are queued and followed afterwards, and only when their
// target was not already walked, so a file is always reported under its
// real path when it has one inside the tree.
func Walk(rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("cannot walk %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot walk %s: not a directory", rootPath)
	}

	w := &walker{opts: opts, visitor: visitor}
	w.seen = append(w.seen, info)
	if err := w.walkDir(rootPath); err != nil {
		return err
	}

	for len(w.links) > 0 {
		link := w.links[0]
		w.links = w.links[1:]
		if w.visited(link.info) {
			w.skip(link.path, "directory already visited")
			continue
		}
		w.seen = append(w.seen, link.info)
		if err := w.walkDir(link.path); err != nil {
			return err
		}
	}
	return nil
}

// dirLink is a symlinked directory waiting to be followed.
type dirLink struct {
	path string
	info os.FileInfo
}

type walker struct {
	opts    WalkOptions
	visitor func(path string, info os.FileInfo) error
	seen    []os.FileInfo // every directory entered so far
	links   []dirLink     // symlinked directories, in discovery order
}

func (w *walker) walkDir(dir string) error {
	// os.ReadDir returns entries sorted by name
	entries, err := os.ReadDir(dir)
	if err != nil {
		return w.readError(dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := w.resolve(path, entry)
		if err != nil {
			return err
		}
		if info == nil {
			continue
		}

		switch {
		case info.IsDir() && entry.Type()&os.ModeSymlink != 0:
			w.links = append(w.links, dirLink{path: path, info: info})
		case info.IsDir():
			if w.visited(info) {
				w.skip(path, "directory already visited")
				continue
			}
			w.seen = append(w.seen, info)
			if err := w.walkDir(path); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := w.visitor(path, info); err != nil {
				return err
			}
		default:
			w.skip(path, "not a regular file")
		}
	}
	return nil
}

// resolve returns the FileInfo used to decide what to do with an entry, or
// nil when the entry is skipped.
func (w *walker) resolve(path string, entry os.DirEntry) (os.FileInfo, error) {
	if entry.Type()&os.ModeSymlink == 0 {
		info, err := entry.Info()
		if errors.Is(err, fs.ErrNotExist) {
			// removed while walking
			return nil, nil
		}
		return info, err
	}

	if !w.opts.FollowSymlinks {
		w.skip(path, "symbolic link")
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		w.skip(path, "dangling symbolic link")
		return nil, nil
	}
	return info, nil
}

func (w *walker) visited(info os.FileInfo) bool {
	for _, s := range w.seen {
		if os.SameFile(s, info) {
			return true
		}
	}
	return false
}

func (w *walker) readError(dir string, err error) error {
	if w.opts.OnError == nil {
		return fmt.Errorf("cannot read directory %s: %w", dir, err)
	}
	if herr := w.opts.OnError(dir, err); herr != nil && !errors.Is(herr, SkipDir) {
		return herr
	}
	return nil
}

func (w *walker) skip(path, reason string) {
	if w.opts.OnSkip != nil {
		w.opts.OnSkip(path, reason)
	}
}
