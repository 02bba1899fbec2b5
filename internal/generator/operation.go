package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is a file system change that is validated as part of a batch
// before any operation in the batch is executed.
//
// force=true allows replacing a file that already exists.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteError reports a file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteFileOp writes Content to Path, replacing any existing file when the
// batch runs with force.
//
// Validation rejects nil content (empty is fine), a path that is a
// directory, and an existing file without force. It does not touch disk.
type WriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode

	exists bool
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	info, err := os.Stat(op.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		op.exists = false
		return nil
	case err != nil:
		return &WriteError{Path: op.Path, Err: err}
	case info.IsDir():
		return &WriteError{Path: op.Path, Err: errors.New("is a directory")}
	case !force:
		return fmt.Errorf("file already exists: %s", op.Path)
	}
	op.exists = true
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(op.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: op.Path, Err: err}
		}
	}
	if err := os.WriteFile(op.Path, op.Content, op.Mode); err != nil {
		return &WriteError{Path: op.Path, Err: err}
	}
	return nil
}

// Description reads "Create" or "Overwrite" depending on what Validate
// found on disk.
func (op *WriteFileOp) Description() string {
	verb := "Create"
	if op.exists {
		verb = "Overwrite"
	}
	return fmt.Sprintf("%s %s (%d bytes)", verb, op.Path, len(op.Content))
}
