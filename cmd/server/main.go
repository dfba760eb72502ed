package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtrack/internal/app"
	"jobtrack/internal/config"
	"jobtrack/internal/database/migration"

	"github.com/joho/godotenv"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	if err := runMigrations(container); err != nil {
		logger.Fatalf("migrations failed: %v", err)
	}

	a := app.New(container)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}
}

func runMigrations(container *app.Container) error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return migration.Runner{FS: sub}.Run(ctx, container.DB.SQLDB())
}
