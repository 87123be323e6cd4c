package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/crmdesk/crm-system/internal/api"
	"github.com/crmdesk/crm-system/internal/infrastructure/config"
	mongodb "github.com/crmdesk/crm-system/internal/infrastructure/db/mongo"
	"github.com/crmdesk/crm-system/internal/infrastructure/db/postgres"
	redisdb "github.com/crmdesk/crm-system/internal/infrastructure/db/redis"
	"github.com/crmdesk/crm-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}
	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET is not set")
	}

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer db.Close()

	if err := postgres.Apply(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	mongoClient, mdb, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, mdb); err != nil {
		log.Fatal().Err(err).Msg("ensure mongo indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	e, err := api.NewRouter(db, mdb, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
