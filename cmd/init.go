package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file and create the recipes directory",
	Long: `Writes the current settings (defaults, flags and environment) to a config file,
by default $HOME/.astra-arcana.yaml, and creates a recipes directory under the first
data directory so saved selections can be cast by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".astra-arcana.yaml")
		}
		force, _ := cmd.Flags().GetBool("force")

		write := viper.SafeWriteConfigAs
		if force {
			write = viper.WriteConfigAs
		}
		if err := write(path); err != nil {
			return fmt.Errorf("failed to write config %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)

		if dirs := viper.GetStringSlice("data_dirs"); len(dirs) > 0 {
			recipes := filepath.Join(dirs[0], "recipes")
			if err := os.MkdirAll(recipes, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", recipes, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recipes are read from %s\n", recipes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("path", "", "where to write the config file")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}
