package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/forms"
	"nebulanotes/internal/logger"
	"nebulanotes/internal/middlewares"
	"nebulanotes/internal/models"
	"nebulanotes/internal/responses"
	"nebulanotes/internal/services"
)

type ObservationService interface {
	List(ctx context.Context, userID int64) ([]models.Observation, error)
	Get(ctx context.Context, id, userID int64) (*models.Observation, error)
	Create(ctx context.Context, userID int64, in services.ObservationInput) (*models.Observation, error)
	Update(ctx context.Context, id, userID int64, in services.ObservationInput) (*models.Observation, error)
	Delete(ctx context.Context, id, userID int64) error
}

// ObservationHandler routes sit behind RequireLogin; every call is scoped to
// the session user.
type ObservationHandler struct {
	observations ObservationService
	objects      AstronomicalObjectService
	events       EventService
	log          *logger.Logger
}

func NewObservationHandler(observations ObservationService, objects AstronomicalObjectService, events EventService, log *logger.Logger) *ObservationHandler {
	return &ObservationHandler{observations: observations, objects: objects, events: events, log: log}
}

func (h *ObservationHandler) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	observations, err := h.observations.List(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "observation_list.html",
		Title:    "My observations",
		View:     gin.H{"Observations": observations},
		Data:     observations,
	})
}

func (h *ObservationHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.observations.Get(c.Request.Context(), id, middlewares.CurrentUser(c).ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "observation_detail.html",
		Title:    "Observation",
		View:     gin.H{"Observation": o},
		Data:     o,
	})
}

func (h *ObservationHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Record observation", "/observation/create", forms.ObservationForm{}, nil)
}

func (h *ObservationHandler) Create(c *gin.Context) {
	var f forms.ObservationForm
	if ve := forms.Bind(c, &f); ve != nil {
		h.renderForm(c, "Record observation", "/observation/create", f, ve)
		return
	}
	userID := middlewares.CurrentUser(c).ID
	if _, err := h.observations.Create(c.Request.Context(), userID, f.Input()); err != nil {
		h.saveFailed(c, "Record observation", "/observation/create", f, err)
		return
	}
	responses.Redirect(c, "/observations/list")
}

func (h *ObservationHandler) UpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.observations.Get(c.Request.Context(), id, middlewares.CurrentUser(c).ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	h.renderForm(c, "Edit observation", updateURL("observation", id), forms.ObservationFormFrom(o), nil)
}

func (h *ObservationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID := middlewares.CurrentUser(c).ID
	action := updateURL("observation", id)

	var f forms.ObservationForm
	if ve := forms.Bind(c, &f); ve != nil {
		if _, err := h.observations.Get(c.Request.Context(), id, userID); err != nil {
			fail(c, h.log, err)
			return
		}
		h.renderForm(c, "Edit observation", action, f, ve)
		return
	}
	if _, err := h.observations.Update(c.Request.Context(), id, userID, f.Input()); err != nil {
		h.saveFailed(c, "Edit observation", action, f, err)
		return
	}
	responses.Redirect(c, detailURL("observation", id))
}

func (h *ObservationHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.observations.Get(c.Request.Context(), id, middlewares.CurrentUser(c).ID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	confirmDelete(c, "Delete observation", o, deleteURL("observation", id), detailURL("observation", id))
}

func (h *ObservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.observations.Delete(c.Request.Context(), id, middlewares.CurrentUser(c).ID); err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Redirect(c, "/observations/list")
}

func (h *ObservationHandler) saveFailed(c *gin.Context, title, action string, f forms.ObservationForm, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		h.renderForm(c, title, action, f, ve)
		return
	}
	fail(c, h.log, err)
}

func (h *ObservationHandler) renderForm(c *gin.Context, title, action string, f forms.ObservationForm, ve *services.ValidationError) {
	ctx := c.Request.Context()
	objects, err := h.objects.List(ctx, nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	events, err := h.events.List(ctx, services.SortAsc)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "observation_form.html",
		Title:    title,
		View: gin.H{
			"Form":    f,
			"Action":  action,
			"Objects": objects,
			"Events":  events,
		},
		Data:   f,
		Errors: ve,
	})
}
