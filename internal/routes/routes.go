package routes

import (
	"github.com/gin-gonic/gin"

	"nebulanotes/internal/handlers"
	"nebulanotes/internal/middlewares"
	"nebulanotes/internal/responses"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Galaxy      *handlers.GalaxyHandler
	ObjectType  *handlers.ObjectTypeHandler
	Object      *handlers.AstronomicalObjectHandler
	Event       *handlers.EventHandler
	Observation *handlers.ObservationHandler
	Profile     *handlers.ProfileHandler
	Health      *handlers.HealthHandler
}

// RegisterRoutes mounts every page on router. LoadSession must already be
// installed so RequireLogin can see the user.
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	NewAuthRoutes(h.Auth).RegisterRoutes(&router.RouterGroup)

	NewCRUDRoutes("galaxy", "galaxies", h.Galaxy).RegisterRoutes(&router.RouterGroup)
	NewCRUDRoutes("type", "types", h.ObjectType).RegisterRoutes(&router.RouterGroup)
	NewCRUDRoutes("object", "objects", h.Object).RegisterRoutes(&router.RouterGroup)
	NewCRUDRoutes("event", "events", h.Event).RegisterRoutes(&router.RouterGroup)

	protected := router.Group("/")
	protected.Use(middlewares.RequireLogin())
	NewCRUDRoutes("observation", "observations", h.Observation).RegisterRoutes(protected)
	NewProfileRoutes(h.Profile).RegisterRoutes(protected)

	router.NoRoute(responses.NotFound)
	router.NoMethod(responses.NotFound)
}
