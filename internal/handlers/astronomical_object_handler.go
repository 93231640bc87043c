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
	"nebulanotes/internal/utils"
)

type AstronomicalObjectService interface {
	List(ctx context.Context, typeID *int64) ([]models.AstronomicalObject, error)
	Get(ctx context.Context, id int64) (*models.AstronomicalObject, error)
	Create(ctx context.Context, in services.AstronomicalObjectInput) (*models.AstronomicalObject, error)
	Update(ctx context.Context, id int64, in services.AstronomicalObjectInput) (*models.AstronomicalObject, error)
	Delete(ctx context.Context, id int64) error
}

type AstronomicalObjectHandler struct {
	objects  AstronomicalObjectService
	types    ObjectTypeService
	galaxies GalaxyService
	profiles ProfileService
	log      *logger.Logger
}

func NewAstronomicalObjectHandler(
	objects AstronomicalObjectService,
	types ObjectTypeService,
	galaxies GalaxyService,
	profiles ProfileService,
	log *logger.Logger,
) *AstronomicalObjectHandler {
	return &AstronomicalObjectHandler{
		objects:  objects,
		types:    types,
		galaxies: galaxies,
		profiles: profiles,
		log:      log,
	}
}

// List shows all objects, or those of one type when ?type=<id> is given.
// A type value that is not an id lists nothing.
func (h *AstronomicalObjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var typeID *int64
	selected := c.Query("type")
	if selected != "" {
		id, ok := utils.ParseID(selected)
		if !ok {
			id = -1
		}
		typeID = &id
	}

	objects, err := h.objects.List(ctx, typeID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	types, err := h.types.List(ctx)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	responses.Render(c, http.StatusOK, responses.Page{
		Template: "object_list.html",
		Title:    "Astronomical objects",
		View: gin.H{
			"Objects":      objects,
			"Types":        types,
			"SelectedType": selected,
		},
		Data: objects,
	})
}

func (h *AstronomicalObjectHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.objects.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	favorite := false
	if user := middlewares.CurrentUser(c); user != nil {
		favorite, err = h.profiles.IsFavorite(c.Request.Context(), user.ID, o.ID)
		if err != nil {
			fail(c, h.log, err)
			return
		}
	}

	responses.Render(c, http.StatusOK, responses.Page{
		Template: "object_detail.html",
		Title:    o.Name,
		View:     gin.H{"Object": o, "IsFavorite": favorite},
		Data:     o,
	})
}

func (h *AstronomicalObjectHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Add astronomical object", "/object/create", forms.AstronomicalObjectForm{}, nil)
}

func (h *AstronomicalObjectHandler) Create(c *gin.Context) {
	var f forms.AstronomicalObjectForm
	if ve := forms.Bind(c, &f); ve != nil {
		h.renderForm(c, "Add astronomical object", "/object/create", f, ve)
		return
	}
	if _, err := h.objects.Create(c.Request.Context(), f.Input()); err != nil {
		h.saveFailed(c, "Add astronomical object", "/object/create", f, err)
		return
	}
	responses.Redirect(c, "/objects/list")
}

func (h *AstronomicalObjectHandler) UpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.objects.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	h.renderForm(c, "Edit astronomical object", updateURL("object", id), forms.AstronomicalObjectFormFrom(o), nil)
}

func (h *AstronomicalObjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	action := updateURL("object", id)

	var f forms.AstronomicalObjectForm
	if ve := forms.Bind(c, &f); ve != nil {
		if _, err := h.objects.Get(c.Request.Context(), id); err != nil {
			fail(c, h.log, err)
			return
		}
		h.renderForm(c, "Edit astronomical object", action, f, ve)
		return
	}
	if _, err := h.objects.Update(c.Request.Context(), id, f.Input()); err != nil {
		h.saveFailed(c, "Edit astronomical object", action, f, err)
		return
	}
	responses.Redirect(c, detailURL("object", id))
}

func (h *AstronomicalObjectHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.objects.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	confirmDelete(c, "Delete astronomical object", o, deleteURL("object", id), detailURL("object", id))
}

func (h *AstronomicalObjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.objects.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Redirect(c, "/objects/list")
}

func (h *AstronomicalObjectHandler) saveFailed(c *gin.Context, title, action string, f forms.AstronomicalObjectForm, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		h.renderForm(c, title, action, f, ve)
		return
	}
	fail(c, h.log, err)
}

func (h *AstronomicalObjectHandler) renderForm(c *gin.Context, title, action string, f forms.AstronomicalObjectForm, ve *services.ValidationError) {
	ctx := c.Request.Context()
	types, err := h.types.List(ctx)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	galaxies, err := h.galaxies.List(ctx)
	if err != nil {
		fail(c, h.log, err)
		return
	}

	responses.Render(c, http.StatusOK, responses.Page{
		Template: "object_form.html",
		Title:    title,
		View: gin.H{
			"Form":     f,
			"Action":   action,
			"Types":    types,
			"Galaxies": galaxies,
		},
		Data:   f,
		Errors: ve,
	})
}
