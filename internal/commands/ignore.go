package commands

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/weaver/internal/config"
	"github.com/simonhull/firebird-suite/weaver/internal/generator"
	"github.com/simonhull/firebird-suite/weaver/internal/ignore"
	"github.com/simonhull/firebird-suite/weaver/internal/output"
	"github.com/simonhull/firebird-suite/weaver/internal/project"
)

// IgnoreCmd returns the ignore command with init/check/list subcommands
func IgnoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ignore",
		Short: "Manage the project's ignore file",
		Long: `Manage the .weaverignore file that excludes files from the Makefile.

Patterns are matched case-insensitively:
  *.bak      a file name, path or directory name matching the glob
  build/     the directory build wherever it occurs, and everything in it
  /tools/    only the top-level tools directory
  gen/**/*.c a .c file at any depth under gen; * alone stops at a "/"`,
	}

	cmd.PersistentFlags().String("ignore-file", ignore.DefaultFileName, "Ignore file, relative to the project directory")
	cmd.PersistentFlags().Bool("gitignore", false, "Also apply .gitignore")

	cmd.AddCommand(ignoreInitCmd())
	cmd.AddCommand(ignoreCheckCmd())
	cmd.AddCommand(ignoreListCmd())

	return cmd
}

func loadIgnoreRules(cmd *cobra.Command) (*project.Rules, error) {
	dir, err := projectDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		return nil, err
	}
	return project.LoadRules(project.Options{Root: dir, IgnoreFile: cfg.IgnoreFile, Gitignore: cfg.Gitignore})
}

// ignoreInitCmd writes the default ignore file
func ignoreInitCmd() *cobra.Command {
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default ignore file",
		Long: `Write a documented ignore file holding the default patterns.

An existing ignore file is kept unless --force is given.`,
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
			target := project.Options{Root: dir, IgnoreFile: cfg.IgnoreFile}.IgnorePath()

			ops := []generator.Operation{
				&generator.WriteFileOp{Path: target, Content: ignore.DefaultFileContent(), Mode: 0o644},
			}
			if err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Force:  force,
				Writer: output.Writer(),
			}); err != nil {
				return fmt.Errorf("%w (use --force to replace it)", err)
			}
			if !dryRun {
				output.Success("Wrote " + target)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing ignore file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")

	return cmd
}

// ignoreCheckCmd reports which rule, if any, excludes each path
func ignoreCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Show whether paths are ignored and by which pattern",
		Long: `Test paths, relative to the project directory, against the active rules.

Example:
  weaver ignore check src/main.c build/gen.c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadIgnoreRules(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, arg := range args {
				p := path.Clean(toSlash(arg))
				if pattern, ok := rules.Matcher.Match(p); ok {
					fmt.Fprintf(w, "%s: ignored by %s\n", p, pattern)
				} else {
					fmt.Fprintf(w, "%s: not ignored\n", p)
				}
			}
			return nil
		},
	}
	return cmd
}

// ignoreListCmd prints the active patterns
func ignoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the active ignore patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadIgnoreRules(cmd)
			if err != nil {
				return err
			}

			switch {
			case !rules.Found:
				output.Info(fmt.Sprintf("%s not found, using the default patterns", rules.Path))
			case rules.Defaults:
				output.Info(fmt.Sprintf("%s has no patterns, using the default patterns", rules.Path))
			default:
				output.Verbose("Patterns from " + rules.Path)
			}

			w := cmd.OutOrStdout()
			for _, r := range rules.Matcher.Rules() {
				fmt.Fprintln(w, r.Pattern)
			}
			if rules.Matcher.HasGitignore() {
				fmt.Fprintln(w, ignore.GitignoreSource)
			}
			return nil
		},
	}
}
