package cmd

import (
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// updateRepository is the GitHub repository checked for new releases.
const updateRepository = "giantswarm/mcp-lens"

// newSelfUpdateCmd creates the Cobra command for updating the binary in place.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update mcp-lens to the latest version",
		Long:  `Check GitHub for a newer release of mcp-lens and replace the current binary with it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := rootCmd.Version
			if version == "" || version == "dev" {
				return fmt.Errorf("cannot self-update a development version; install a released binary first")
			}

			updater, err := selfupdate.NewUpdater(selfupdate.Config{})
			if err != nil {
				return fmt.Errorf("failed to initialize updater: %w", err)
			}

			latest, found, err := updater.DetectLatest(cmd.Context(), selfupdate.ParseSlug(updateRepository))
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}
			if !found {
				return fmt.Errorf("no release found for %s", updateRepository)
			}

			if latest.LessOrEqual(version) {
				fmt.Fprintf(cmd.OutOrStdout(), "Current version %s is the latest\n", version)
				return nil
			}

			exe, err := selfupdate.ExecutablePath()
			if err != nil {
				return fmt.Errorf("could not locate executable: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updating from %s to %s...\n", version, latest.Version())
			if err := updater.UpdateTo(cmd.Context(), latest, exe); err != nil {
				return fmt.Errorf("update failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated to %s\n", latest.Version())
			return nil
		},
	}
}
