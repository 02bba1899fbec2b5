// Package project runs weaver's detection pipeline over a project
// directory and inspects the metadata that names its executable.
//
// # Overview
//
// Detect loads the ignore rules, classifies the project's files and
// selects the build language:
//
//	det, err := project.Detect(project.Options{Root: "."})
//	if errors.Is(err, build.ErrNoSourcesDetected) {
//	    // det still carries the ignored and skipped paths
//	}
//
// GuessTarget derives an executable name from the selected sources: the
// last element of a Go module path, the package name in Cargo.toml, or the
// file holding the program's entry point.
package project
