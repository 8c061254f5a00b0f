package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdduha/diagram-ai-backend/internal/config"
	"github.com/kdduha/diagram-ai-backend/internal/handler"
	"github.com/kdduha/diagram-ai-backend/internal/logger"
	"github.com/kdduha/diagram-ai-backend/internal/server"
	"github.com/kdduha/diagram-ai-backend/internal/service"
	"github.com/kdduha/diagram-ai-backend/internal/upstream"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Diagram AI Backend
// @version 1.0
// @description Relay between the drawing front end and an OpenAI-compatible model service.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// the upstream client is built per request so that missing credentials
	// only fail generation calls
	generateService := service.NewGenerateService(zl, func() (service.Completer, error) {
		client, err := upstream.New(cfg.Upstream)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
	if cfg.Upstream.BaseURL == "" || cfg.Upstream.APIKey == "" {
		zl.Warn("upstream is not configured, generation endpoints will fail until it is",
			zap.Bool("base_url_set", cfg.Upstream.BaseURL != ""),
			zap.Bool("api_key_set", cfg.Upstream.APIKey != ""),
		)
	}

	g := handler.NewGenerateHandler(zl, generateService)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.NewRouter(cfg, zl, g),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		zl.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
	zl.Info("server stopped")
}
