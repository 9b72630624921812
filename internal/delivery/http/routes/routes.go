package routes

import (
	"log"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/infrastructure/storage"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, c *cache.Redis, photos *storage.LocalPhotoStore, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app, cfg, db, c, photos, hub, logger)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App, cfg config.Config, db database.DB, c *cache.Redis, photos *storage.LocalPhotoStore, hub *ws.Hub, logger *log.Logger) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), cfg, db, c, photos, hub, logger)
}
