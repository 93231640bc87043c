package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/logger"
	"nebulanotes/internal/middlewares"
	"nebulanotes/internal/models"
	"nebulanotes/internal/responses"
)

type ProfileService interface {
	Get(ctx context.Context, userID int64) (*models.UserProfile, error)
	IsFavorite(ctx context.Context, userID, objectID int64) (bool, error)
	AddFavorite(ctx context.Context, userID, objectID int64) error
	RemoveFavorite(ctx context.Context, userID, objectID int64) error
}

type ProfileHandler struct {
	profiles ProfileService
	log      *logger.Logger
}

func NewProfileHandler(profiles ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// Show renders the session user's profile with favourite objects.
func (h *ProfileHandler) Show(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	p, err := h.profiles.Get(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "profile.html",
		Title:    user.Username,
		View:     gin.H{"Profile": p},
		Data:     gin.H{"user": user, "profile": p},
	})
}

func (h *ProfileHandler) AddFavorite(c *gin.Context) {
	h.toggle(c, h.profiles.AddFavorite)
}

func (h *ProfileHandler) RemoveFavorite(c *gin.Context) {
	h.toggle(c, h.profiles.RemoveFavorite)
}

func (h *ProfileHandler) toggle(c *gin.Context, apply func(ctx context.Context, userID, objectID int64) error) {
	objectID, ok := pathID(c)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), middlewares.CurrentUser(c).ID, objectID); err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Redirect(c, detailURL("object", objectID))
}
