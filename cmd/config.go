package cmd

import (
	"fmt"
	"path/filepath"

	"prompt-library/core/config"

	"github.com/spf13/cobra"
)

var configForce bool

// configCmd groups the configuration commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.yaml with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(configDir, config.FileName)
		if err := config.WriteDefault(path, configForce); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	RootCmd.AddCommand(configCmd)
}
