package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/config"
	httpapi "github.com/tbourn/go-medtrack-backend/internal/http"
	"github.com/tbourn/go-medtrack-backend/internal/observability"
	"github.com/tbourn/go-medtrack-backend/internal/repo"
	"github.com/tbourn/go-medtrack-backend/internal/sysutil"
)

// @title medtrack API
// @version 1.0
// @description Medication catalog, physical descriptions, dose schedule and search.
// @BasePath /api/v1

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.ConfigureLogging(cfg.LogLevel, cfg.LogPretty, nil)

	version := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), "dev")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.Open(repo.Options{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.Source(),
		MaxOpenConns: cfg.DB.MaxOpenConns,
		Tracing:      cfg.OTEL.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("open store")
	}
	defer func() { _ = repo.Close(db) }()

	if err := prepareStore(ctx, db, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("prepare store")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// prepareStore creates missing tables and loads the baseline catalog into
// an empty store, as configured.
func prepareStore(ctx context.Context, db *gorm.DB, cfg config.DBConfig) error {
	if cfg.AutoMigrate {
		if err := repo.CreateTables(ctx, db); err != nil {
			return err
		}
	}
	if !cfg.SeedOnEmpty || !repo.HasTables(ctx, db) {
		return nil
	}
	n, _, err := repo.MedicinesStats(ctx, db)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	log.Info().Msg("seeding baseline catalog")
	return repo.SeedBaselineData(ctx, db)
}
