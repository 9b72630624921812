package v1

import (
	"log"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/infrastructure/persistence/postgres"
	"skill-swap/internal/infrastructure/storage"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"
	useruc "skill-swap/internal/usecase/user"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires every v1 route. The skill catalog and rating summaries are
// public; everything else sits behind the access-token middleware.
func Register(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, photos *storage.LocalPhotoStore, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	offeredRepo := repository.NewPostgresOfferedListingRepository(db)
	wantedRepo := repository.NewPostgresWantedListingRepository(db)
	browseRepo := repository.NewPostgresBrowseRepository(db)
	swapRepo := repository.NewPostgresSwapRequestRepository(db)
	ratingRepo := repository.NewPostgresRatingRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := useruc.NewService(userRepo, photos)
	skillUC := usecase.NewSkillUsecase(skillRepo, c)
	listingUC := usecase.NewListingUsecase(offeredRepo, wantedRepo, skillRepo)
	browseUC := usecase.NewBrowseUsecase(browseRepo)
	swapUC := usecase.NewSwapRequestUsecase(swapRepo, skillRepo, userRepo, c)
	ratingUC := usecase.NewRatingUsecase(ratingRepo, c)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	listingHandler := handler.NewListingHandler(listingUC)
	browseHandler := handler.NewBrowseHandler(browseUC)
	swapHandler := handler.NewSwapRequestHandler(swapUC)
	ratingHandler := handler.NewRatingHandler(ratingUC)
	wsHandler := ws.NewHandler(hub, jwtSvc, logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	skillHandler.RegisterPublicRoutes(r)
	ratingHandler.RegisterPublicRoutes(r)

	r.Get("/ws/events", wsHandler.HandleEvents)

	protected := r.Group("", authMw.Middleware())
	profileHandler.RegisterRoutes(protected)
	skillHandler.RegisterRoutes(protected)
	listingHandler.RegisterRoutes(protected)
	browseHandler.RegisterRoutes(protected)
	swapHandler.RegisterRoutes(protected)
	ratingHandler.RegisterRoutes(protected)
}
