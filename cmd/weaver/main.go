package main

import (
	"os"

	"github.com/simonhull/firebird-suite/weaver/internal/commands"
	"github.com/simonhull/firebird-suite/weaver/internal/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.GenerateCmd())
	rootCmd.AddCommand(commands.DetectCmd())
	rootCmd.AddCommand(commands.IgnoreCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
