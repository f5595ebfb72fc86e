package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HassanA01/AskAneeq/internal/analytics"
	"github.com/HassanA01/AskAneeq/internal/api"
	"github.com/HassanA01/AskAneeq/internal/config"
	"github.com/HassanA01/AskAneeq/internal/profile"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AskAneeq server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

func runServer() error {
	fmt.Fprintf(os.Stderr, "askaneeq version %s\n", version)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := analytics.Open(cfg.Analytics.DBPath)
	if err != nil {
		return fmt.Errorf("opening analytics store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("closing analytics store", "error", err)
		}
	}()

	if cfg.Admin.Token == "" {
		slog.Warn("ADMIN_TOKEN not set, admin API disabled")
	}

	handler := api.NewRouter(api.AppDeps{
		Store:        store,
		Profile:      profile.Data(),
		AdminToken:   cfg.Admin.Token,
		BookingURL:   cfg.Booking.URL,
		CORSOrigins:  cfg.CORS.Origins,
		RateLimitMax: cfg.Server.RateLimitMax,
		Version:      version,
		Log:          slog.Default(),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("askaneeq listening", "addr", addr)
		slog.Info("endpoints",
			"health", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port),
			"mcp", fmt.Sprintf("http://localhost:%d/mcp", cfg.Server.Port),
		)
		if cfg.Server.PublicURL != "" {
			slog.Info("public MCP endpoint", "url", cfg.Server.PublicURL+"/mcp")
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
