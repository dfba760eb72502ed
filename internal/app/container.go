package app

import (
	"context"
	"log"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	dbpostgres "jobtrack/internal/database/postgres"
	"jobtrack/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
