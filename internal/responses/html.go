package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"nebulanotes/internal/middlewares"
	"nebulanotes/internal/services"
)

var offered = []string{binding.MIMEHTML, binding.MIMEJSON}

// Page describes one rendered screen. View is the template context; Data is
// what JSON clients receive.
type Page struct {
	Template string
	Title    string
	Message  string
	View     gin.H
	Data     interface{}
	Errors   *services.ValidationError
}

// Render answers with HTML unless the client prefers JSON. The session user
// is added to every template context.
func Render(c *gin.Context, statusCode int, p Page) {
	view := gin.H{}
	for k, v := range p.View {
		view[k] = v
	}
	view["Title"] = p.Title
	view["Message"] = p.Message
	view["User"] = middlewares.CurrentUser(c)
	view["Errors"] = p.Errors

	status := "success"
	var errs interface{}
	errMsg := ""
	if statusCode >= http.StatusBadRequest {
		status = "error"
		errMsg = p.Message
	}
	if p.Errors != nil {
		status = "fail"
		errs = p.Errors
		errMsg = p.Errors.Error()
	}

	c.Negotiate(statusCode, gin.Negotiate{
		Offered:  offered,
		HTMLName: p.Template,
		HTMLData: view,
		JSONData: APIResponse{
			Status:  status,
			Message: p.Message,
			Data:    p.Data,
			Error:   errMsg,
			Errors:  errs,
		},
	})
}

// FormError re-renders a rejected form with status 200.
func FormError(c *gin.Context, p Page, ve *services.ValidationError) {
	p.Errors = ve
	Render(c, http.StatusOK, p)
}

func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, Page{
		Template: "404.html",
		Title:    "Page not found",
		Message:  "The page you are looking for does not exist.",
	})
}

func ServerError(c *gin.Context) {
	Render(c, http.StatusInternalServerError, Page{
		Template: "error.html",
		Title:    "Server error",
		Message:  "Something went wrong. Please try again later.",
	})
}

// Redirect sends a 302 to location for every client.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
