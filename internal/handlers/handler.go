package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/logger"
	"nebulanotes/internal/responses"
	"nebulanotes/internal/services"
	"nebulanotes/internal/utils"
)

// pathID reads :id. A malformed id renders the not-found page and returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		responses.NotFound(c)
	}
	return id, ok
}

// fail renders the page matching err: not-found for ErrNotFound, the error
// page for anything else.
func fail(c *gin.Context, log *logger.Logger, err error) {
	if errors.Is(err, services.ErrNotFound) {
		responses.NotFound(c)
		return
	}
	_ = c.Error(err)
	log.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	responses.ServerError(c)
}

// saveFailed re-renders page with the field errors of a rejected save, or
// falls through to fail.
func saveFailed(c *gin.Context, log *logger.Logger, page responses.Page, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		responses.FormError(c, page, ve)
		return
	}
	fail(c, log, err)
}

func confirmDelete(c *gin.Context, title string, object fmt.Stringer, action, cancelURL string) {
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "confirm_delete.html",
		Title:    title,
		View: gin.H{
			"Object":    object.String(),
			"Action":    action,
			"CancelURL": cancelURL,
		},
		Data: object,
	})
}

func detailURL(resource string, id int64) string {
	return fmt.Sprintf("/%s/%d", resource, id)
}

func updateURL(resource string, id int64) string {
	return detailURL(resource, id) + "/update"
}

func deleteURL(resource string, id int64) string {
	return detailURL(resource, id) + "/delete"
}
