package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/forum-dev/forum/backend/internal/router"
	"github.com/forum-dev/forum/backend/internal/setup"
	"github.com/forum-dev/forum/shared/config"
	"github.com/forum-dev/forum/shared/logger"
)

func loadConfig(c *cli.Context) *config.Config {
	cfg := config.MustLoad(c.String("config_folder"))
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)
	return cfg
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API server",
		Action: func(c *cli.Context) error {
			cfg := loadConfig(c)

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			deps, err := setup.SetupDependencies(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := deps.Cleanup(); err != nil {
					logger.Log.Error("cleanup failed", "error", err)
				}
			}()

			srv := &http.Server{
				Addr:              ":" + cfg.Port(),
				Handler:           router.New(deps),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Log.Info("server started", "addr", srv.Addr, "storage", cfg.Public.Storage)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
