package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/judyrop/restaurant-pos/configs"
	"github.com/judyrop/restaurant-pos/logger"
	"github.com/judyrop/restaurant-pos/middlewares"
	"github.com/judyrop/restaurant-pos/seed"
	"github.com/judyrop/restaurant-pos/storage"
	"github.com/judyrop/restaurant-pos/storage/gormstore"
	"github.com/judyrop/restaurant-pos/storage/jsonstore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	seedFlag := flag.Bool("seed", false, "load demo data into an empty store before serving")
	flag.Parse()

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}
	log := logger.New("restaurant-pos", cfg.LogLevel)

	if err := run(cfg, *seedFlag, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg configs.Config, seedDemo bool, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()
	log.Info("storage ready", slog.String("driver", cfg.StorageDriver))

	if seedDemo || cfg.SeedDemoData {
		if _, err := seed.Run(ctx, repo, log); err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
	}

	routerCfg := RouterConfig{CORSOrigins: cfg.CORSOrigins, RateLimit: cfg.RateLimit}
	if cfg.AuthEnabled() {
		if routerCfg.Verifier, err = middlewares.NewVerifier(ctx, cfg.OIDCIssuer, cfg.OIDCClientID); err != nil {
			return err
		}
		log.Info("bearer token auth enabled", slog.String("issuer", cfg.OIDCIssuer))
	}

	gin.SetMode(gin.ReleaseMode)
	r, err := SetupRouter(repo, log, routerCfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// openRepository picks the backend named by STORAGE_DRIVER.
func openRepository(cfg configs.Config) (storage.Repository, error) {
	switch cfg.StorageDriver {
	case configs.StorageSQLite:
		return gormstore.Open(gormstore.DriverSQLite, cfg.DBSource)
	case configs.StoragePostgres:
		return gormstore.Open(gormstore.DriverPostgres, cfg.DBSource)
	default:
		return jsonstore.Open(cfg.DataFile)
	}
}
