package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bazar_api/api"
	"bazar_api/internal/database"
	"bazar_api/internal/keepalive"
	"bazar_api/internal/sales"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&migrateOnStart, "migrate", false, "create the sales table before serving")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		logger.Error("could not connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
		return err
	}
	defer db.Close()
	logger.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if migrateOnStart {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	gin.SetMode(cfg.GinMode)
	salesService := sales.NewService(sales.NewSQLStorage(db), logger)
	engine := api.NewEngine(salesService, logger, cfg.BasePath)

	if cfg.SelfPingURL != "" {
		pinger := keepalive.NewPinger(cfg.SelfPingURL, logger)
		pinger.Start()
		defer pinger.Stop()
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("docs", fmt.Sprintf("http://localhost%s/api-docs", srv.Addr)),
		)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error trying to start server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
