package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bikedash/internal/config"
	"bikedash/internal/dashboard"
	"bikedash/internal/dataset"
	"bikedash/internal/logger"
	"bikedash/internal/maps"
	"bikedash/internal/server"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	log := logger.NewDefault()
	if level := logger.ParseLevel(cfg.LogLevel); level != -1 {
		log.SetLevel(level)
	}
	if format := logger.ParseFormat(cfg.LogFormat); format != -1 {
		log.SetFormat(format)
	}
	logger.SetGlobalLogger(log)

	log.Info("Starting CitiBike dashboard service", map[string]interface{}{
		"version":     config.GetVersion(),
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"data_file":   cfg.DataFile,
	})

	// Load the dataset up front; nothing renders without it
	table, err := dataset.NewLoader(log).Load(cfg.DataFile)
	if err != nil {
		log.Fatal("Failed to load dataset", err, map[string]interface{}{"path": cfg.DataFile})
	}
	if table.Empty() {
		log.Fatal("Dataset holds no usable rows", dataset.ErrDataUnavailable, map[string]interface{}{"path": cfg.DataFile})
	}
	log.Info("Dataset loaded", map[string]interface{}{
		"rows":     len(table.Records),
		"min_date": table.MinDate.Format("2006-01-02"),
		"max_date": table.MaxDate.Format("2006-01-02"),
	})

	resolver := maps.NewResolver(cfg.MapsDir, cfg.DefaultMap)
	dash := dashboard.New(table, resolver, cfg.DefaultTopN, log)
	srv := server.NewServer(cfg, dash, log)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped")
}
