package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"todogql/docs"
	"todogql/internal/auth"
	"todogql/internal/config"
	"todogql/internal/db"
	"todogql/internal/graph"
	"todogql/internal/handler"
	"todogql/internal/logging"
	"todogql/internal/router"
	"todogql/internal/service"
)

// @title To-do GraphQL API
// @version 1.0
// @description GraphQL API for users and their to-do items with JWT authentication.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("store init")
	}
	log.WithField("driver", cfg.StoreDriver).Info("store connected")

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(store.Users, store.Todos, jwtService, cfg.TokenTTL, log)
	userService := service.NewUserService(store.Users, log)
	todoService := service.NewTodoService(store.Todos, log)

	schema, err := graph.NewSchema(authService, userService, todoService, log)
	if err != nil {
		log.WithError(err).Fatal("graphql schema")
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, log, jwtService, handler.NewGraphQLHandler(schema))

	go func() {
		addr := ":" + cfg.ServerPort
		log.WithField("addr", addr).Info("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Error("store close")
	}
}
