package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"credo-tcf/internal/platform/config"
	"credo-tcf/internal/platform/httpserver"
	"credo-tcf/internal/platform/logger"
	"credo-tcf/internal/restriction/metrics"
	"credo-tcf/internal/restriction/service"
	"credo-tcf/internal/restriction/source"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Restriction logic lives in internal/restriction.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(metrics.New(reg)),
		service.WithCapacity(cfg.IndexCapacity),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loadRestrictions(ctx, svc, cfg.RestrictionsFile); err != nil {
		return err
	}

	srv := httpserver.New(cfg.Addr, newRouter(svc, log, reg))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting restriction service", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	g.Go(func() error {
		reloadOn(gctx, hup, svc, cfg.RestrictionsFile, log)
		return nil
	})

	return g.Wait()
}

// loadRestrictions seeds the service from path. An empty path starts the
// service with no restrictions.
func loadRestrictions(ctx context.Context, svc *service.Service, path string) error {
	if path == "" {
		return nil
	}
	entries, err := source.LoadFile(path)
	if err != nil {
		return err
	}
	_, err = svc.Load(ctx, entries)
	return err
}

// reloadOn reloads the declaration file each time trigger fires until ctx
// ends. A failed reload keeps the current restrictions.
func reloadOn(ctx context.Context, trigger <-chan os.Signal, svc *service.Service, path string, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-trigger:
			if err := loadRestrictions(ctx, svc, path); err != nil {
				log.ErrorContext(ctx, "reload failed", "path", path, "error", err)
				continue
			}
			log.InfoContext(ctx, "restrictions reloaded", "path", path)
		}
	}
}
