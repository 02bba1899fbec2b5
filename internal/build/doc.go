// Package build turns classified sources into a set of Makefile rules.
//
// # Overview
//
// Select picks exactly one Language from the classified buckets using a
// fixed priority order: C, C++, Objective-C, Go, Rust with a Cargo.toml,
// Rust from loose .rs files. The first non-empty bucket wins, no matter how
// many files the other buckets hold.
//
// Each Language is a strategy that knows its default toolchain, how to
// derive object paths from sources and which rules it needs. Synthesize
// wraps those rules with the shared variables, clean and help rules.
//
// # Usage
//
//	sel, err := build.Select(result.Buckets)
//	if errors.Is(err, build.ErrNoSourcesDetected) {
//	    // report and exit non-zero
//	}
//	plan := build.NewPlan(sel, build.Options{Target: "app"})
//	rules := build.Synthesize(plan)
package build
