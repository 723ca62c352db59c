package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lus-labeler-backend/internal/config"
	"lus-labeler-backend/internal/database"
	"lus-labeler-backend/internal/drive"
	"lus-labeler-backend/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting LUS Labeler backend...")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.DriveRootFolderID == "" {
		logger.Warn("DRIVE_ROOT_FOLDER_ID is not set; the catalog will be empty")
	}

	db, err := database.InitDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	ctx := context.Background()

	// The Drive client is built once here and shared by every request.
	store, err := drive.NewDriveStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to build Drive client", zap.Error(err))
	}
	catalog := drive.NewCatalog(store, cfg.DriveRootFolderID, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.ListenPort,
		Handler: server.New(db, catalog, logger).Handler(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	logger.Info("Server started", zap.String("port", cfg.ListenPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
