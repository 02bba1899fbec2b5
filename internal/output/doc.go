// Package output provides styled terminal output for weaver.
//
// # Overview
//
// Every user-facing message goes through this package so the CLI keeps a
// consistent look with the rest of the Firebird Suite. Messages go to
// stdout by default; tests redirect them with SetWriter.
//
// # Usage
//
//	output.Success("Wrote Makefile")
//	output.Info("Detected c project with 2 source files")
//	output.Step("src/main.c")
//	output.Warn("no go.mod found")
//	output.Error("no supported source files found")
//
// # Verbose Mode
//
// Ignored paths and traversal details are only shown with --verbose:
//
//	output.SetVerbose(true)
//	output.Verbose("ignored build/gen.c (build/)")
//
// # Styling
//
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Warn: ⚠️ yellow
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
