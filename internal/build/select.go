package build

import (
	"github.com/simonhull/firebird-suite/weaver/internal/classify"
)

// Selection is the project's language with its sources and derived objects.
type Selection struct {
	Language Language
	Sources  []string
	Objects  []string
}

// detector pairs a predicate over the buckets with the handler that builds
// the selection when the predicate holds.
type detector struct {
	matches func(classify.Buckets) bool
	selects func(classify.Buckets) (*Selection, error)
}

// detectors is evaluated in order; the first match wins.
var detectors = []detector{
	fromBucket(classify.C, C),
	fromBucket(classify.CPP, CPP),
	fromBucket(classify.ObjC, ObjC),
	fromBucket(classify.Go, Go),
	fromBucket(classify.RustManifest, Cargo),
	fromBucket(classify.RustSource, Rustc),
}

func fromBucket(cat classify.Category, lang Language) detector {
	return detector{
		matches: func(b classify.Buckets) bool { return len(b[cat]) > 0 },
		selects: func(b classify.Buckets) (*Selection, error) {
			sources := append([]string(nil), b[cat]...)
			objects, err := lang.Objects(sources)
			if err != nil {
				return nil, err
			}
			return &Selection{Language: lang, Sources: sources, Objects: objects}, nil
		},
	}
}

// Select returns the first language in priority order whose bucket is not
// empty. It returns ErrNoSourcesDetected when every bucket is empty and a
// *DuplicateObjectError when the selected sources collide.
func Select(buckets classify.Buckets) (*Selection, error) {
	for _, d := range detectors {
		if d.matches(buckets) {
			return d.selects(buckets)
		}
	}
	return nil, ErrNoSourcesDetected
}
