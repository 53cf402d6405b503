// Package main is the entry point for the Code-Red chatbot server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/codered-chatbot/internal/chat"
	"github.com/hpn/codered-chatbot/internal/config"
	"github.com/hpn/codered-chatbot/internal/security"
	"github.com/hpn/codered-chatbot/internal/ui"
)

func main() {
	// =========================================================================
	// 1. Load configuration (.env, environment, config.yaml)
	// =========================================================================
	cfg, err := config.Load(os.Getenv("CODERED_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// 2. Setup structured logger (JSON format, credentials redacted)
	// =========================================================================
	logger := setupLogger(os.Stdout, cfg.Logging.Level, cfg.Secrets())

	logger.Info("configuration loaded",
		slog.String("address", cfg.Server.Addr()),
		slog.String("profile", cfg.Assistant.Profile),
		slog.String("config_file", cfg.File),
		slog.Any("providers", cfg.ProviderOrder()),
	)

	// =========================================================================
	// 3. Build the provider chain and composer
	// =========================================================================
	composer := chat.NewComposer(
		cfg.Profile(),
		chat.NewProviderChain(cfg),
		chat.WithLogger(logger),
	)

	// =========================================================================
	// 4. Setup Gin router with middleware
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(cfg, composer, logger)

	// =========================================================================
	// 5. Start HTTP server with graceful shutdown
	// =========================================================================
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", srv.Addr))
		if !cfg.Logging.Quiet {
			ui.PrintBanner()
			ui.PrintStartupInfo(srv.Addr, cfg.Assistant.Profile, composer.Providers())
		}

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 6. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	if !cfg.Logging.Quiet {
		ui.PrintShutdown()
	}

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
	if !cfg.Logging.Quiet {
		ui.PrintGoodbye()
	}
}

// setupLogger creates a structured JSON logger that redacts secrets and
// installs it as the default logger.
func setupLogger(w io.Writer, level string, secrets []string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	handler := security.NewRedactedHandler(slog.NewJSONHandler(w, opts), secrets...)
	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
