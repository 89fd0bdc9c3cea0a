// README: Entry point; loads config, wires the model client and services, serves HTTP until signalled.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travelagent/internal/config"
	httptransport "travelagent/internal/http"
	"travelagent/internal/infra"
	"travelagent/internal/modules/suggestion"
	"travelagent/internal/modules/weather"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := infra.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, closeGen, err := infra.NewGenerator(ctx, cfg.AI, logger)
	if err != nil {
		logger.Error("model client init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeGen(); err != nil {
			logger.Warn("model client close failed", "error", err)
		}
	}()

	suggestionSvc := suggestion.NewService(gen, logger)
	weatherSvc := weather.NewService(gen, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Suggestion: suggestionSvc,
		Weather:    weatherSvc,
		Logger:     logger,
		HTTP:       cfg.HTTP,
		AITimeout:  cfg.AI.Timeout,
	})
	server := handler.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr, "provider", cfg.AI.Provider, "model", cfg.AI.Model)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}
