package app

import (
	"fmt"
	"log"
	"strings"

	"skill-swap/internal/config"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
	"skill-swap/internal/infrastructure/storage"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap assembles the whole service: storage, cache, migrations, the ws
// hub and the HTTP surface. The returned cleanup closes what the container
// opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()
	ws.SetDefaultHub(container.Hub)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, cfg, logger)

	registry := routes.NewRegistry()
	registry.Register(f, cfg, container.DB, container.Cache, container.Photos, container.Hub, logger)

	return &App{Fiber: f}, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	app.Use(storage.PublicUploadPrefix, static.New(cfg.Upload.Dir))
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
