package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/weaver"
)

// VersionCmd prints version information
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the weaver version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weaver %s (%s %s/%s)\n", weaver.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
