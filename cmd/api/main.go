package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamatlas/people-directory/internal/api"
	"github.com/teamatlas/people-directory/internal/core/service"
	"github.com/teamatlas/people-directory/internal/core/store"
	"github.com/teamatlas/people-directory/internal/infrastructure/config"
	mongodb "github.com/teamatlas/people-directory/internal/infrastructure/db/mongo"
	redisdb "github.com/teamatlas/people-directory/internal/infrastructure/db/redis"
	"github.com/teamatlas/people-directory/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	st := store.New(mongodb.NewUserRepository(db))
	if err := st.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("loading user collection failed")
	}

	throttle := redisdb.NewSignInThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
	authService := service.NewAuthService(st, throttle, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, log)
	directory := service.NewDirectoryService(st, nil)

	e := api.NewRouter(authService, directory, db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
