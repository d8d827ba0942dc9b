package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"observe/internal/config"
	"observe/internal/demo"
	"observe/internal/httpapi"
	"observe/internal/observable"
	"observe/internal/watch"
)

const shutdownTimeout = 5 * time.Second

func run(ctx context.Context, stdout, stderr io.Writer, cfg config.Config, configPath string, watchConfig bool) error {
	logger, err := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	h, err := demo.Run(stdout, demo.Options{Name: cfg.Name, RenameTo: cfg.RenameTo, Logger: &logger})
	if err != nil {
		return err
	}
	defer h.Release()
	if cfg.ServeAddr == "" {
		return nil
	}
	return serve(ctx, logger, h, cfg, configPath, watchConfig)
}

// serve exposes h over HTTP until ctx is canceled or SIGINT/SIGTERM arrives.
func serve(ctx context.Context, logger zerolog.Logger, h *observable.Handle, cfg config.Config, configPath string, watchConfig bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins, nil, nil)
	srv := &http.Server{
		Addr:              cfg.ServeAddr,
		Handler:           httpapi.NewMux(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.ServeAddr).Str("entity", h.ID()).Msg("introspection API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", cfg.ServeAddr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Warn().Err(err).Msg("graceful shutdown error")
		}
		return nil
	})
	if watchConfig {
		// The watcher holds its own handle so the entity outlives either side.
		wh := h.Clone()
		g.Go(func() error {
			defer wh.Release()
			return watch.New(configPath, wh, logger).Run(gctx)
		})
	}
	return g.Wait()
}
