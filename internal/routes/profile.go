package routes

import (
	"github.com/gin-gonic/gin"

	"nebulanotes/internal/handlers"
)

// ProfileRoutes must be mounted on a group that requires login.
type ProfileRoutes struct {
	handler *handlers.ProfileHandler
}

func NewProfileRoutes(handler *handlers.ProfileHandler) *ProfileRoutes {
	return &ProfileRoutes{handler: handler}
}

func (r *ProfileRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile/", r.handler.Show)
	router.POST("/object/:id/favorite", r.handler.AddFavorite)
	router.POST("/object/:id/unfavorite", r.handler.RemoveFavorite)
}
