/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with a generated API key",
	Long: `Write a seidr config file for local development.

The config carries the server address, the data directory, the CompactSize
ceiling and a freshly generated API key.

Examples:
  seidr init
  seidr init --config=./seidr.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		return writeInitialConfig(cmd, path)
	},
}

// writeInitialConfig saves a default config with a generated API key to path.
func writeInitialConfig(cmd *cobra.Command, path string) error {
	cfg := config.DefaultConfig()
	key, err := config.GenerateSecureKey(32)
	if err != nil {
		return fmt.Errorf("failed to generate API key: %w", err)
	}
	cfg.Security.APIKey = key

	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	cmd.Printf("Wrote config to %s\n", path)
	cmd.Printf("API key: %s\n", key)
	return nil
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
