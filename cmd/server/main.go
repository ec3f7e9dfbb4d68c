package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/pos-system/auth-service/docs"
	"github.com/pos-system/auth-service/internal/api"
	"github.com/pos-system/auth-service/internal/api/metrics"
	"github.com/pos-system/auth-service/internal/core/service"
	"github.com/pos-system/auth-service/internal/infrastructure/db"
	"github.com/pos-system/auth-service/internal/infrastructure/security"
	"github.com/pos-system/auth-service/internal/pkg/config"
	"github.com/pos-system/auth-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       POS Auth API
// @version                     1.0
// @description                 Authentication and user management for the point-of-sale backend.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Error().Err(err).Msg("failed to load config")
		return err
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "pos-auth",
	})
	if !cfg.IsDevelopment() && cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Warn().Str("env", cfg.Env).Msg("JWT_SECRET is the development default; tokens can be forged")
	}

	store, err := db.Open(ctx, db.Config{
		URL:           cfg.Database.URL,
		MongoDatabase: cfg.Database.MongoDB,
		Debug:         cfg.Database.Debug,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to open credential store")
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("credential store close")
		}
	}()
	log.Info().Str("driver", store.Driver).Msg("credential store ready")

	tokens, err := security.NewTokenService(security.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Algorithm:  cfg.JWT.Algorithm,
		TTL:        cfg.JWT.TTL(),
		BcryptCost: cfg.JWT.BcryptCost,
	})
	if err != nil {
		log.Error().Err(err).Msg("invalid token configuration")
		return err
	}

	registry, err := newRegistry()
	if err != nil {
		log.Error().Err(err).Msg("failed to register metrics")
		return err
	}

	e := api.NewRouter(api.RouterConfig{
		AuthService: service.NewAuthService(store.Users, tokens, log),
		UserService: service.NewUserService(store.Users, tokens, log),
		Store:       store.Users,
		Driver:      store.Driver,
		Logger:      log,
		Registry:    registry,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error().Err(err).Msg("http server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}

func newRegistry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
