package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vyrodovalexey/avroutemap/internal/config"
	"github.com/vyrodovalexey/avroutemap/internal/server"
)

const shutdownTimeout = 30 * time.Second

// run starts the server and the config watcher and blocks until
// shutdown.
func run(cfg *config.Config, flags cliFlags, logger *zap.Logger) {
	srv := server.New(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(context.Background())
	}()

	watcher := startConfigWatcher(flags, logger)

	waitForShutdown(srv, watcher, errCh, logger)
}

// startConfigWatcher starts watching the configuration file when
// enabled. Reloads only take effect on restart; the watcher surfaces
// edits early so a broken file is noticed before the next rollout.
func startConfigWatcher(flags cliFlags, logger *zap.Logger) *config.Watcher {
	if !flags.watchConfig {
		return nil
	}

	watcher, err := config.NewWatcher(flags.configPath,
		func(cfg *config.Config) {
			logger.Info("configuration file changed, restart to apply",
				zap.String("address", cfg.Addr()),
				zap.String("apiPrefix", cfg.URL),
			)
		},
		config.WithLogger(logger),
		config.WithErrorCallback(func(err error) {
			logger.Error("configuration reload failed", zap.Error(err))
		}),
	)
	if err != nil {
		logger.Warn("failed to create config watcher", zap.Error(err))
		return nil
	}

	if err := watcher.Start(context.Background()); err != nil {
		logger.Warn("failed to start config watcher", zap.Error(err))
		return nil
	}

	return watcher
}

// waitForShutdown waits for a shutdown signal or a server failure and
// performs graceful shutdown.
func waitForShutdown(srv *server.Server, watcher *config.Watcher, errCh <-chan error, logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server exited", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if watcher != nil {
		_ = watcher.Stop()
	}

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server gracefully", zap.Error(err))
	}

	logger.Info("server stopped")
}
