package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/weaver/internal/build"
	"github.com/simonhull/firebird-suite/weaver/internal/config"
	"github.com/simonhull/firebird-suite/weaver/internal/ignore"
	"github.com/simonhull/firebird-suite/weaver/internal/project"
)

// detectReport is the machine-readable result of 'weaver detect'.
type detectReport struct {
	Language   string          `yaml:"language"`
	Compiler   string          `yaml:"compiler,omitempty"`
	Sources    []string        `yaml:"sources"`
	Objects    []string        `yaml:"objects"`
	Module     string          `yaml:"module,omitempty"`
	IgnoreFile string          `yaml:"ignore_file"`
	Defaults   bool            `yaml:"default_patterns"`
	Ignored    []ignoredReport `yaml:"ignored,omitempty"`
	Skipped    []skippedReport `yaml:"skipped,omitempty"`
	Warnings   []string        `yaml:"warnings,omitempty"`
}

type ignoredReport struct {
	Path    string `yaml:"path"`
	Pattern string `yaml:"pattern"`
}

type skippedReport struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
}

func newDetectReport(det *project.Detection) detectReport {
	r := detectReport{
		Language:   "none",
		IgnoreFile: det.Rules.Path,
		Defaults:   det.Rules.Defaults,
		Warnings:   det.Warnings,
	}
	if sel := det.Selection; sel != nil {
		r.Language = sel.Language.Name()
		r.Compiler = sel.Language.DefaultToolchain(build.DefaultTarget).Line()
		r.Sources = sel.Sources
		r.Objects = sel.Objects
	}
	if det.Module != nil {
		r.Module = det.Module.Path
	}
	for _, f := range det.Files.Ignored {
		r.Ignored = append(r.Ignored, ignoredReport{Path: f.Path, Pattern: f.Pattern})
	}
	for _, s := range det.Files.Skipped {
		r.Skipped = append(r.Skipped, skippedReport{Path: s.Path, Reason: s.Reason})
	}
	return r
}

// DetectCmd creates and returns the 'detect' command
func DetectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the detected language, sources and ignored files",
		Long: `Show what weaver would build without writing anything.

Exits with status 1 when no supported source files are found.

Examples:
  weaver detect
  weaver detect --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}

			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir, cmd.Flags())
			if err != nil {
				return err
			}

			det, err := project.Detect(project.Options{Root: dir, IgnoreFile: cfg.IgnoreFile, Gitignore: cfg.Gitignore})
			if err != nil && !errors.Is(err, build.ErrNoSourcesDetected) {
				return err
			}

			report := newDetectReport(det)
			if format == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if encErr := enc.Encode(report); encErr != nil {
					return fmt.Errorf("failed to encode report: %w", encErr)
				}
				if encErr := enc.Close(); encErr != nil {
					return encErr
				}
			} else {
				writeDetectText(cmd.OutOrStdout(), report)
			}

			if err != nil {
				return fmt.Errorf("%w in %s", err, dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")
	cmd.Flags().String("ignore-file", ignore.DefaultFileName, "Ignore file, relative to the project directory")
	cmd.Flags().Bool("gitignore", false, "Also skip files excluded by .gitignore")

	return cmd
}

func writeDetectText(w io.Writer, r detectReport) {
	fmt.Fprintf(w, "Language:  %s\n", r.Language)
	if r.Compiler != "" {
		fmt.Fprintf(w, "Compiler:  %s\n", r.Compiler)
	}
	if r.Module != "" {
		fmt.Fprintf(w, "Module:    %s\n", r.Module)
	}
	rules := r.IgnoreFile
	if r.Defaults {
		rules += " (default patterns)"
	}
	fmt.Fprintf(w, "Ignore:    %s\n", rules)

	writeList(w, "Sources", r.Sources)
	writeList(w, "Objects", r.Objects)

	if len(r.Ignored) > 0 {
		fmt.Fprintf(w, "Ignored (%d):\n", len(r.Ignored))
		for _, f := range r.Ignored {
			fmt.Fprintf(w, "  %s  [%s]\n", f.Path, f.Pattern)
		}
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped (%d):\n", len(r.Skipped))
		for _, s := range r.Skipped {
			fmt.Fprintf(w, "  %s  (%s)\n", s.Path, s.Reason)
		}
	}
	if r.Language == "none" {
		fmt.Fprintf(w, "Supported: %s\n", build.Supported)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "Warning:   %s\n", warning)
	}
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n  %s\n", title, len(items), strings.Join(items, "\n  "))
}
