package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/weaver/internal/output"
	"github.com/simonhull/firebird-suite/weaver/internal/project"
)

// reportDetection prints what detection learned that is not the result
// itself: the ignore rules used, ignored files and skipped entries.
func reportDetection(det *project.Detection) {
	rules := det.Rules
	switch {
	case rules.Found && !rules.Defaults:
		output.Verbose(fmt.Sprintf("Using %d ignore patterns from %s", len(rules.Patterns), rules.Path))
	case rules.Found:
		output.Verbose(fmt.Sprintf("%s has no patterns, using the defaults", rules.Path))
	default:
		output.Verbose("No ignore file, using the default patterns")
	}

	output.Verbose(fmt.Sprintf("Classified %d source files, ignored %d", det.Files.Buckets.Count(), len(det.Files.Ignored)))
	for _, f := range det.Files.Ignored {
		output.Verbose(fmt.Sprintf("Ignored %s (%s)", f.Path, f.Pattern))
	}
	for _, s := range det.Files.Skipped {
		if s.Err != nil {
			output.Warn(fmt.Sprintf("Skipped %s: %s", s.Path, s.Reason))
			continue
		}
		output.Verbose(fmt.Sprintf("Skipped %s: %s", s.Path, s.Reason))
	}
	for _, w := range det.Warnings {
		output.Warn(w)
	}
}
