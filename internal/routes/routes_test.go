package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nebulanotes/internal/handlers"
	"nebulanotes/internal/logger"
	"nebulanotes/internal/templates"
)

// newRouter mounts every route. The handlers have no services, so only pages
// that never reach a service can be requested.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	log := logger.Nop()
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r, Handlers{
		Auth:        handlers.NewAuthHandler(nil, handlers.CookieConfig{Name: "sessionid", TTL: time.Hour}, log),
		Galaxy:      handlers.NewGalaxyHandler(nil, log),
		ObjectType:  handlers.NewObjectTypeHandler(nil, log),
		Object:      handlers.NewAstronomicalObjectHandler(nil, nil, nil, nil, log),
		Event:       handlers.NewEventHandler(nil, nil, log),
		Observation: handlers.NewObservationHandler(nil, nil, nil, log),
		Profile:     handlers.NewProfileHandler(nil, log),
		Health:      handlers.NewHealthHandler(map[string]handlers.Pinger{}, log),
	})
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Accept", "text/html")
	r.ServeHTTP(w, req)
	return w
}

func TestPublicPages(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/", "/home/", "/login/", "/register/", "/galaxy/create", "/type/create"} {
		w := serve(r, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health").Code)
}

func TestProtectedPagesRedirectToLogin(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		method string
		path   string
		next   string
	}{
		{http.MethodGet, "/observations/list", "%2Fobservations%2Flist"},
		{http.MethodGet, "/observation/create", "%2Fobservation%2Fcreate"},
		{http.MethodPost, "/observation/3/delete", "%2Fobservation%2F3%2Fdelete"},
		{http.MethodGet, "/profile/", "%2Fprofile%2F"},
		{http.MethodPost, "/object/3/favorite", "%2Fobject%2F3%2Ffavorite"},
	}
	for _, tt := range tests {
		w := serve(r, tt.method, tt.path)
		assert.Equal(t, http.StatusFound, w.Code, tt.path)
		assert.Equal(t, "/login/?next="+tt.next, w.Header().Get("Location"), tt.path)
	}
}

func TestUnknownPagesRenderNotFound(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/nebula", "/galaxies/", "/galaxy/1/edit"} {
		w := serve(r, http.MethodGet, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "The page you are looking for does not exist.", path)
	}
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/galaxy/abc").Code)
}
