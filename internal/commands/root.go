package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/weaver"
	"github.com/simonhull/firebird-suite/weaver/internal/input"
	"github.com/simonhull/firebird-suite/weaver/internal/output"
)

// isTerminal reports whether prompts can be shown. Tests replace it.
var isTerminal = input.IsTerminal

// RootCmd creates and returns the root command for the weaver CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "weaver",
		Short: "Generate a Makefile for a C, C++, Objective-C, Go or Rust project",
		Long: `weaver looks at the source files in a project directory, works out which
toolchain builds it and writes a ready-to-use Makefile.

Languages are checked in a fixed order and the first one with sources wins:
  C > C++ > Objective-C > Go > Rust (Cargo.toml) > Rust (loose .rs files)

Files can be excluded with a .weaverignore file in the project root.`,
		Version: weaver.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")

	return cmd
}

// projectDir returns the --dir flag after checking it names a directory.
func projectDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", dir)
	}
	return dir, nil
}

// toSlash normalizes a user-supplied path to the slash form used for
// matching, whatever the platform separator.
func toSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}
