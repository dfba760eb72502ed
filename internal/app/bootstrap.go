package app

import (
	"fmt"
	"strings"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	routes.Register(f, c.Config, c.DB, c.Cache, c.Logger)

	return &App{Fiber: f}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
