package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"todogql/internal/auth"
	"todogql/internal/config"
	"todogql/internal/db"
	"todogql/internal/logging"
	"todogql/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.WithError(err).Fatal("seed failed")
	}
}

// run seeds the configured store and always closes it before returning.
func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	if cfg.SeedSource == "" {
		return errors.New("SEED_SOURCE is required")
	}

	store, err := db.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store init: %w", err)
	}
	defer func() {
		if closeErr := store.Close(context.Background()); closeErr != nil {
			log.WithError(closeErr).Error("store close")
		}
	}()

	log.WithField("source", cfg.SeedSource).Info("loading seed users")
	users, err := loadSeed(ctx, cfg.SeedSource)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	log.WithField("count", len(users)).Info("seed users loaded")

	authService := service.NewAuthService(store.Users, store.Todos, auth.NewJWTService(cfg.JWTSecret), cfg.TokenTTL, log)
	created, skipped, err := seedUsers(ctx, authService, users)
	fields := logrus.Fields{"created": created, "skipped": skipped, "total": created + skipped}
	if err != nil {
		log.WithFields(fields).Warn("seed stopped early")
		return err
	}

	log.WithFields(fields).Info("seed completed")
	return nil
}
