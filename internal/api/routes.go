package api

import (
	"github.com/labstack/echo/v4"

	"placehub/internal/api/handlers"
	"placehub/internal/api/middleware"
	"placehub/internal/api/services"
	"placehub/internal/api/ws"
	"placehub/internal/config"
	"placehub/internal/domain"
	r "placehub/internal/redis"
	"placehub/internal/storage"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Areas    *services.AreaService
	Places   *services.PlaceService
	Comments *services.CommentService
	Seeder   *services.SeedCoordinator
	Hub      *ws.Hub
	Uploader storage.Uploader
}

// NewDeps builds the services over the given stores around a single shared
// AreaResolver.
func NewDeps(
	areas services.AreaStore,
	places services.PlaceStore,
	comments services.CommentStore,
	areaCache r.Cache[[]domain.Area],
	hub *ws.Hub,
	uploader storage.Uploader,
) Deps {
	if hub == nil {
		hub = ws.NewHub()
	}
	resolver := services.NewAreaResolver(areas, areaCache, hub)

	return Deps{
		Areas:    services.NewAreaService(areas, resolver),
		Places:   services.NewPlaceService(places, resolver, hub),
		Comments: services.NewCommentService(comments, places, hub),
		Seeder:   services.NewSeedCoordinator(areas, resolver),
		Hub:      hub,
		Uploader: uploader,
	}
}

func SetupRoutes(e *echo.Echo, deps Deps, cfg *config.Config) {
	e.Validator = NewValidator()

	if local, ok := deps.Uploader.(*storage.LocalStore); ok {
		e.Static("/uploads", local.Dir())
	}

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", handlers.HealthCheck)

	wsHandler := handlers.NewWebSocketHandler(deps.Hub)
	apiGroup.GET("/ws", wsHandler.HandleConnection)

	areaHandler := handlers.NewAreaHandler(deps.Areas, deps.Seeder)
	apiGroup.GET("/areas", areaHandler.ListAreas)
	apiGroup.POST("/areas", areaHandler.CreateArea)
	apiGroup.POST("/areas/seed", areaHandler.SeedAreas)

	placeHandler := handlers.NewPlaceHandler(deps.Places, deps.Uploader, cfg.PublicURL)
	apiGroup.GET("/places", placeHandler.ListPlaces)
	apiGroup.GET("/places/:id", placeHandler.GetPlace)
	apiGroup.POST("/places", placeHandler.CreatePlace)
	apiGroup.PUT("/places/:id", placeHandler.UpdatePlace)

	commentHandler := handlers.NewCommentHandler(deps.Comments, deps.Uploader, cfg.PublicURL)
	commentGroup := apiGroup.Group("/comments")
	commentGroup.Use(middleware.OptionalJWT(cfg.JWTKey))
	commentGroup.Use(middleware.ExtractUsernameFromJWT())
	commentGroup.GET("/:placeId", commentHandler.ListComments)
	commentGroup.POST("/:placeId", commentHandler.CreateComment)
}
