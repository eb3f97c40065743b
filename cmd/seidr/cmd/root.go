/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seidr",
	Short: "seidr - binary record codec toolkit",
	Long: `seidr encodes, decodes and inspects records in the compact binary
wire format: little-endian primitives, base-128 variable-length integers
and CompactSize length prefixes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().Uint64("max-size", 0, "CompactSize ceiling (0 uses the configured value)")
}

// loadConfig resolves the effective configuration for a command: the
// --config file if given, the default config path if one exists there,
// otherwise built-in defaults. A nonzero --max-size overrides the ceiling.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	switch {
	case path != "":
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.ConfigExists(config.GetDefaultConfigPath()):
		loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = config.DefaultConfig()
	}

	if maxSize, _ := cmd.Flags().GetUint64("max-size"); maxSize != 0 {
		cfg.Codec.MaxMessageSize = maxSize
	}
	return cfg, nil
}
