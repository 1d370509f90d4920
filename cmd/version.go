package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mcp-lens",
		Long:  `All software has versions. This is mcp-lens's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is expected to be set, typically in root.go during build time.
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mcp-lens version %s\n", rootCmd.Version)
		},
	}
}
