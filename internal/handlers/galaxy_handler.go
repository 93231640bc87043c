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

type GalaxyService interface {
	List(ctx context.Context) ([]models.Galaxy, error)
	Get(ctx context.Context, id int64) (*models.Galaxy, error)
	Create(ctx context.Context, in services.GalaxyInput) (*models.Galaxy, error)
	Update(ctx context.Context, id int64, in services.GalaxyInput) (*models.Galaxy, error)
	Delete(ctx context.Context, id int64) error
}

const galaxySavedMessage = "Galaxy was saved to the database!"

type GalaxyHandler struct {
	galaxies GalaxyService
	log      *logger.Logger
}

func NewGalaxyHandler(galaxies GalaxyService, log *logger.Logger) *GalaxyHandler {
	return &GalaxyHandler{galaxies: galaxies, log: log}
}

func (h *GalaxyHandler) List(c *gin.Context) {
	galaxies, err := h.galaxies.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}

	page := responses.Page{
		Template: "galaxy_list.html",
		Title:    "Galaxies",
		View:     gin.H{"Galaxies": galaxies},
		Data:     galaxies,
	}
	if c.Query("saved") != "" {
		page.Message = galaxySavedMessage
	}
	responses.Render(c, http.StatusOK, page)
}

func (h *GalaxyHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.galaxies.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "galaxy_detail.html",
		Title:    g.Name,
		View:     gin.H{"Galaxy": g},
		Data:     g,
	})
}

func (h *GalaxyHandler) CreateForm(c *gin.Context) {
	responses.Render(c, http.StatusOK, h.formPage("Add galaxy", "/galaxy/create", forms.GalaxyForm{}))
}

func (h *GalaxyHandler) Create(c *gin.Context) {
	var f forms.GalaxyForm
	page := func() responses.Page { return h.formPage("Add galaxy", "/galaxy/create", f) }

	if ve := forms.Bind(c, &f); ve != nil {
		responses.FormError(c, page(), ve)
		return
	}
	if _, err := h.galaxies.Create(c.Request.Context(), f.Input()); err != nil {
		saveFailed(c, h.log, page(), err)
		return
	}
	responses.Redirect(c, "/galaxies/list?saved=1")
}

func (h *GalaxyHandler) UpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.galaxies.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, h.formPage("Edit galaxy", updateURL("galaxy", id), forms.GalaxyFormFrom(g)))
}

func (h *GalaxyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var f forms.GalaxyForm
	page := func() responses.Page { return h.formPage("Edit galaxy", updateURL("galaxy", id), f) }

	if ve := forms.Bind(c, &f); ve != nil {
		if _, err := h.galaxies.Get(c.Request.Context(), id); err != nil {
			fail(c, h.log, err)
			return
		}
		responses.FormError(c, page(), ve)
		return
	}
	if _, err := h.galaxies.Update(c.Request.Context(), id, f.Input()); err != nil {
		saveFailed(c, h.log, page(), err)
		return
	}
	responses.Redirect(c, detailURL("galaxy", id))
}

func (h *GalaxyHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.galaxies.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	confirmDelete(c, "Delete galaxy", g, deleteURL("galaxy", id), detailURL("galaxy", id))
}

func (h *GalaxyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.galaxies.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Redirect(c, "/galaxies/list")
}

func (h *GalaxyHandler) formPage(title, action string, f forms.GalaxyForm) responses.Page {
	return responses.Page{
		Template: "galaxy_form.html",
		Title:    title,
		View: gin.H{
			"Form":        f,
			"Action":      action,
			"GalaxyTypes": models.GalaxyTypes,
		},
		Data: f,
	}
}
