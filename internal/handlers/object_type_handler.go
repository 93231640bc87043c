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

type ObjectTypeService interface {
	List(ctx context.Context) ([]models.ObjectType, error)
	Get(ctx context.Context, id int64) (*models.ObjectType, error)
	Create(ctx context.Context, in services.ObjectTypeInput) (*models.ObjectType, error)
	Update(ctx context.Context, id int64, in services.ObjectTypeInput) (*models.ObjectType, error)
	Delete(ctx context.Context, id int64) error
}

const objectTypeSavedMessage = "Object type was saved to the database!"

type ObjectTypeHandler struct {
	types ObjectTypeService
	log   *logger.Logger
}

func NewObjectTypeHandler(types ObjectTypeService, log *logger.Logger) *ObjectTypeHandler {
	return &ObjectTypeHandler{types: types, log: log}
}

func (h *ObjectTypeHandler) List(c *gin.Context) {
	types, err := h.types.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}

	page := responses.Page{
		Template: "type_list.html",
		Title:    "Object types",
		View:     gin.H{"Types": types},
		Data:     types,
	}
	if c.Query("saved") != "" {
		page.Message = objectTypeSavedMessage
	}
	responses.Render(c, http.StatusOK, page)
}

func (h *ObjectTypeHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.types.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "type_detail.html",
		Title:    t.Name,
		View:     gin.H{"Type": t},
		Data:     t,
	})
}

func (h *ObjectTypeHandler) CreateForm(c *gin.Context) {
	responses.Render(c, http.StatusOK, h.formPage("Add object type", "/type/create", forms.ObjectTypeForm{}))
}

func (h *ObjectTypeHandler) Create(c *gin.Context) {
	var f forms.ObjectTypeForm
	page := func() responses.Page { return h.formPage("Add object type", "/type/create", f) }

	if ve := forms.Bind(c, &f); ve != nil {
		responses.FormError(c, page(), ve)
		return
	}
	if _, err := h.types.Create(c.Request.Context(), f.Input()); err != nil {
		saveFailed(c, h.log, page(), err)
		return
	}
	responses.Redirect(c, "/types/list?saved=1")
}

func (h *ObjectTypeHandler) UpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.types.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Render(c, http.StatusOK, h.formPage("Edit object type", updateURL("type", id), forms.ObjectTypeFormFrom(t)))
}

func (h *ObjectTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var f forms.ObjectTypeForm
	page := func() responses.Page { return h.formPage("Edit object type", updateURL("type", id), f) }

	if ve := forms.Bind(c, &f); ve != nil {
		if _, err := h.types.Get(c.Request.Context(), id); err != nil {
			fail(c, h.log, err)
			return
		}
		responses.FormError(c, page(), ve)
		return
	}
	if _, err := h.types.Update(c.Request.Context(), id, f.Input()); err != nil {
		saveFailed(c, h.log, page(), err)
		return
	}
	responses.Redirect(c, detailURL("type", id))
}

func (h *ObjectTypeHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.types.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	confirmDelete(c, "Delete object type", t, deleteURL("type", id), detailURL("type", id))
}

// Delete removes the type and, through the foreign key, all its objects.
func (h *ObjectTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.types.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	responses.Redirect(c, "/types/list")
}

func (h *ObjectTypeHandler) formPage(title, action string, f forms.ObjectTypeForm) responses.Page {
	return responses.Page{
		Template: "type_form.html",
		Title:    title,
		View:     gin.H{"Form": f, "Action": action},
		Data:     f,
	}
}
