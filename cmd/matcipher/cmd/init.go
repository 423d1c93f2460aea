package cmd

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matcipher/config"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default configuration with a 4×4 unimodular key and its inverse.
Replace the key before real use; both matrices must stay exact inverses.`,
		// The config does not exist yet, so skip the root loader.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")

	return initCmd
}
