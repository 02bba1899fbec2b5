package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/weaver"
	"github.com/simonhull/firebird-suite/weaver/internal/build"
	"github.com/simonhull/firebird-suite/weaver/internal/config"
	"github.com/simonhull/firebird-suite/weaver/internal/generator"
	"github.com/simonhull/firebird-suite/weaver/internal/ignore"
	"github.com/simonhull/firebird-suite/weaver/internal/input"
	"github.com/simonhull/firebird-suite/weaver/internal/makefile"
	"github.com/simonhull/firebird-suite/weaver/internal/output"
	"github.com/simonhull/firebird-suite/weaver/internal/project"
)

// GenerateCmd creates and returns the 'generate' command
func GenerateCmd() *cobra.Command {
	var dryRun, diff bool

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Detect the project language and write a Makefile",
		Long: `Detect the project language and write a Makefile into the project directory.

An existing Makefile is overwritten. Use --diff to see what changes first,
or --dry-run to write nothing.

Settings come from weaver.yml in the project directory, WEAVER_* environment
variables and flags, in increasing order of precedence. When the target or
compiler is not set and stdin is a terminal, weaver asks for them, and asks
before creating the default .weaverignore.

Examples:
  weaver generate
  weaver generate -t server -c "clang -O2 -g"
  weaver generate --magic --yes
  weaver generate -C ../project --diff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir, cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.File != "" {
				output.Verbose("Using config " + cfg.File)
			}

			det, err := project.Detect(project.Options{Root: dir, IgnoreFile: cfg.IgnoreFile, Gitignore: cfg.Gitignore})
			if det != nil {
				reportDetection(det)
			}
			if errors.Is(err, build.ErrNoSourcesDetected) {
				output.Info("Supported: " + build.Supported)
				return fmt.Errorf("%w in %s", err, dir)
			}
			if err != nil {
				return err
			}

			sel := det.Selection
			output.Info(fmt.Sprintf("Detected %s (%d source files)", sel.Language.Name(), len(sel.Sources)))

			interactive := cfg.Interactive && isTerminal()
			prompter := input.NewPrompter(cmd.InOrStdin(), output.Writer())

			opts, err := collectOptions(dir, cfg, sel, interactive, prompter)
			if err != nil {
				return err
			}

			rs := build.Synthesize(build.NewPlan(sel, opts))
			for _, w := range rs.Warnings {
				output.Warn(w)
			}
			if err := rs.Validate(); err != nil {
				return fmt.Errorf("generated rules are inconsistent: %w", err)
			}

			content, err := makefile.Render(rs, makefile.Header{
				Tool:        "weaver",
				Version:     weaver.Version,
				GeneratedAt: time.Now(),
				Language:    sel.Language.Name(),
				Sources:     len(sel.Sources),
			})
			if err != nil {
				return err
			}

			outPath := cfg.Output
			if !filepath.IsAbs(outPath) {
				outPath = filepath.Join(dir, outPath)
			}

			if diff {
				if err := showDiff(outPath, content, interactive); err != nil {
					return err
				}
			}

			ops := []generator.Operation{
				&generator.WriteFileOp{Path: outPath, Content: content, Mode: 0o644},
			}
			if cfg.InitIgnore && !det.Rules.Found {
				create := true
				if interactive {
					create = prompter.Confirm(fmt.Sprintf("Create %s with the default patterns?", filepath.Base(det.Rules.Path)), true)
				}
				if create {
					ops = append(ops, &generator.WriteFileOp{Path: det.Rules.Path, Content: ignore.DefaultFileContent(), Mode: 0o644})
				}
			}

			if err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Force:  true,
				Writer: output.Writer(),
			}); err != nil {
				return err
			}
			if dryRun {
				return nil
			}

			output.Success(fmt.Sprintf("Wrote %s for %s", outPath, sel.Language.Name()))
			fmt.Fprintln(output.Writer())
			output.Info("Next steps:")
			makeCmd := "make"
			if filepath.Clean(dir) != "." {
				makeCmd += " -C " + dir
			}
			output.Step(fmt.Sprintf("%s %s    # build", makeCmd, targetOf(rs)))
			output.Step(fmt.Sprintf("%s clean  # remove build output", makeCmd))
			return nil
		},
	}

	cmd.Flags().StringP("target", "t", "", "Executable name (default a.out)")
	cmd.Flags().StringP("compiler", "c", "", `Compiler and flags, e.g. "clang -O2"`)
	cmd.Flags().StringP("output", "o", "Makefile", "File to write, relative to the project directory")
	cmd.Flags().String("ignore-file", ignore.DefaultFileName, "Ignore file, relative to the project directory")
	cmd.Flags().Bool("gitignore", false, "Also skip files excluded by .gitignore")
	cmd.Flags().BoolP("magic", "m", false, "Name the target after the file that defines main")
	cmd.Flags().Bool("init-ignore", true, "Create the default ignore file when the project has none")
	cmd.Flags().BoolP(config.NonInteractiveFlag, "y", false, "Never prompt; use flags, config and defaults")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show changes against the existing Makefile")

	return cmd
}

// collectOptions fills in the target and compiler from config, the magic
// guess and prompts, in that order.
func collectOptions(dir string, cfg *config.Config, sel *build.Selection, interactive bool, p *input.Prompter) (build.Options, error) {
	opts := build.Options{Target: cfg.Target, Compiler: cfg.Compiler}

	if opts.Target == "" && cfg.Magic {
		var choose project.Chooser
		if interactive {
			choose = func(candidates []string) (int, bool) {
				return p.Choose("Several files define main. Which one is the program?", candidates)
			}
		}
		guess, err := project.GuessTarget(dir, sel, choose)
		if err != nil {
			return opts, err
		}
		if guess.Warning != "" {
			output.Warn(guess.Warning)
		}
		if guess.From != "" {
			output.Info(fmt.Sprintf("Target %s (from %s)", guess.Name, guess.From))
		}
		opts.Target = guess.Name
	}

	if opts.Target == "" && interactive {
		opts.Target = p.Prompt("Target executable name", build.DefaultTarget)
	}

	if opts.Compiler == "" && interactive {
		target := opts.Target
		if target == "" {
			target = build.DefaultTarget
		}
		def := sel.Language.DefaultToolchain(target).Line()
		if answer := p.Prompt("Compiler and flags", def); answer != def {
			opts.Compiler = answer
		}
	}

	return opts, nil
}

// showDiff prints the changes the new content makes to the file at path.
func showDiff(path string, content []byte, interactive bool) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		output.Info(fmt.Sprintf("%s does not exist yet", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	d := generator.Unified(path, path+" (generated)", existing, content)
	if d == "" {
		output.Info("No changes")
		return nil
	}
	return generator.ShowDiff(output.Writer(), path, d, interactive)
}

func targetOf(rs *build.RuleSet) string {
	if t, ok := rs.Variable("TARGET"); ok {
		return t
	}
	return build.DefaultTarget
}
