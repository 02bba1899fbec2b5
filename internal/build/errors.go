package build

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSourcesDetected is returned by Select when every bucket is empty.
// It is an outcome, not a failure: the caller reports it and exits
// non-zero without writing a Makefile.
var ErrNoSourcesDetected = errors.New("no supported source files found")

// DuplicateObjectError reports two or more sources that derive the same
// object path, which would make their rules overwrite each other.
type DuplicateObjectError struct {
	Language string
	Object   string
	Sources  []string
}

func (e *DuplicateObjectError) Error() string {
	return fmt.Sprintf("%s sources %s all map to object %q",
		e.Language, strings.Join(e.Sources, ", "), e.Object)
}
