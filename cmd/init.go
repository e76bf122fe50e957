package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmans/boards/internal/config"
	"github.com/hmans/boards/internal/ui"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes boards.toml (or the file named by --config) with the default
settings, so they can be edited. Refuses to overwrite an existing file
unless --force is given.`,
	// The config file may not exist yet, so skip the usual setup
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := writeDefaultConfig(configPath, initForce); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Wrote ")+configPath)
		return nil
	},
}

func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
