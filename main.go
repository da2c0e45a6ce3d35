package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bazar_api/internal/config"
)

// configPath is the --config flag value: an env file read before the environment.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "bazar",
	Short: "Bazar App sales API",
	Long: `Bazar App sales API: CRUD and aggregate statistics over sales records,
backed by PostgreSQL or SQLite.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an env file (default: ./.env if present)")
}

//go:generate swag init --parseInternal --outputTypes go -o api/docs

//	@title			Bazar App API
//	@version		1.0.0
//	@description	API to manage Bazar App sales.
//	@BasePath		/api
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and builds the matching logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	var logger *zap.Logger
	if cfg.Development() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error building logger: %w", err)
	}
	return cfg, logger, nil
}
