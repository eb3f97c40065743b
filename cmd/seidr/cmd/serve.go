/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skaldic/seidr/pkg/api"
	"github.com/skaldic/seidr/pkg/config"
	"github.com/skaldic/seidr/pkg/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the seidr REST API server: codec endpoints, record
inspection, buffer surgery and a persistent record store.

Examples:
  seidr serve --api-key=mysecretkey --port=9300
  seidr serve --config=./seidr.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Security.APIKey = apiKey
		}
		if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
			cfg.DataDir = dataDir
		}

		// "auto" means a fresh key per run, printed once at startup
		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			key, err := config.GenerateSecureKey(32)
			if err != nil {
				return fmt.Errorf("failed to generate API key: %w", err)
			}
			cfg.Security.APIKey = key
			cmd.Printf("Generated API key: %s\n", key)
		}

		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
		rs, err := store.Open(cfg.DataDir, cfg.Codec.MaxMessageSize)
		if err != nil {
			return fmt.Errorf("failed to open record store: %w", err)
		}
		defer rs.Close()

		return api.StartServer(rs, api.ServerConfig{
			Port:           cfg.Port,
			Bind:           cfg.Bind,
			APIKey:         cfg.Security.APIKey,
			DataDir:        cfg.DataDir,
			MaxMessageSize: cfg.Codec.MaxMessageSize,
		})
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind to (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
	serveCmd.Flags().StringP("data-dir", "d", "", "Data directory for the record store (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
