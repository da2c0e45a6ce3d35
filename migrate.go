package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bazar_api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the sales table if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.Open(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("database migrated", zap.String("driver", cfg.DB.Driver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
