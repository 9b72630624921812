package routes

import (
	"log"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	v1 "skill-swap/internal/delivery/http/routes/v1"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/infrastructure/storage"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, photos *storage.LocalPhotoStore, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, c, photos, hub, logger)
}
