package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/appdotbuilder/futura-blog/database"
	"github.com/appdotbuilder/futura-blog/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           routes.NewRouter(cfg, db, logger),
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.HTTPPort))
		logger.Info("Swagger docs available", zap.String("url", "http://localhost:"+cfg.HTTPPort+"/swagger/index.html"))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
