package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/forms"
	"nebulanotes/internal/logger"
	"nebulanotes/internal/models"
	"nebulanotes/internal/responses"
	"nebulanotes/internal/services"
)

type EventService interface {
	List(ctx context.Context, sort string) ([]models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, in services.EventInput) (*models.Event, error)
	Update(ctx context.Context, id int64, in services.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type EventHandler struct {
	events  EventService
	objects AstronomicalObjectService
	log     *logger.Logger
}

func NewEventHandler(events EventService, objects AstronomicalObjectService, log *logger.Logger) *EventHandler {
	return &EventHandler{events: events, objects: objects, log: log}
}

// List orders by date: ascending by default or with ?sort=asc, descending
// with ?sort=desc.
func (h *EventHandler) List(c *gin.Context) {
	sort := c.DefaultQuery("sort", services.SortAsc)
	events, err := h.events.List(c.Request.Context(), sort)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "event_list.html",
		Title:    "Events",
		View:     gin.H{"Events": events, "Sort": sort},
		Data:     events,
	})
}

func (h *EventHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "event_detail.html",
		Title:    e.Name,
		View:     gin.H{"Event": e},
		Data:     e,
	})
}

func (h *EventHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Add event", "/event/create", forms.EventForm{}, nil)
}

func (h *EventHandler) Create(c *gin.Context) {
	var f forms.EventForm
	if ve := forms.Bind(c, &f); ve != nil {
		h.renderForm(c, "Add event", "/event/create", f, ve)
		return
	}
	if _, err := h.events.Create(c.Request.Context(), f.Input()); err != nil {
		h.saveFailed(c, "Add event", "/event/create", f, err)
		return
	}
	responses.Redirect(c, "/events/list")
}

func (h *EventHandler) UpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	h.renderForm(c, "Edit event", updateURL("event", id), forms.EventFormFrom(e), nil)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	action := updateURL("event", id)

	var f forms.EventForm
	if ve := forms.Bind(c, &f); ve != nil {
		if _, err := h.events.Get(c.Request.Context(), id); err != nil {
			fail(c, h.log, err)
			return
		}
		h.renderForm(c, "Edit event", action, f, ve)
		return
	}
	if _, err := h.events.Update(c.Request.Context(), id, f.Input()); err != nil {
		h.saveFailed(c, "Edit event", action, f, err)
		return
	}
	responses.Redirect(c, detailURL("event", id))
}

func (h *EventHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	confirmDelete(c, "Delete event", e, deleteURL("event", id), detailURL("event", id))
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Redirect(c, "/events/list")
}

func (h *EventHandler) saveFailed(c *gin.Context, title, action string, f forms.EventForm, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		h.renderForm(c, title, action, f, ve)
		return
	}
	fail(c, h.log, err)
}

func (h *EventHandler) renderForm(c *gin.Context, title, action string, f forms.EventForm, ve *services.ValidationError) {
	objects, err := h.objects.List(c.Request.Context(), nil)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "event_form.html",
		Title:    title,
		View:     gin.H{"Form": f, "Action": action, "Objects": objects},
		Data:     f,
		Errors:   ve,
	})
}
