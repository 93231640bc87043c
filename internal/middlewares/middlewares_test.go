package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nebulanotes/internal/logger"
	"nebulanotes/internal/models"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadSession(resolver, "sessionid", logger.Nop()))
	r.GET("/whoami", func(c *gin.Context) {
		if u := CurrentUser(c); u != nil {
			c.String(http.StatusOK, u.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	protected := r.Group("/")
	protected.Use(RequireLogin())
	protected.GET("/observations/list", func(c *gin.Context) {
		c.String(http.StatusOK, "observations of "+CurrentUser(c).Username)
	})
	return r
}

func TestLoadSession(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		setup  func(m *mockResolver)
		want   string
	}{
		{name: "no cookie", want: "anonymous"},
		{
			name:   "valid session",
			cookie: "good",
			setup: func(m *mockResolver) {
				m.On("CurrentUser", mock.Anything, "good").Return(&models.User{ID: 7, Username: "vera"}, nil)
			},
			want: "vera",
		},
		{
			name:   "expired session",
			cookie: "stale",
			setup: func(m *mockResolver) {
				m.On("CurrentUser", mock.Anything, "stale").Return(nil, nil)
			},
			want: "anonymous",
		},
		{
			name:   "store failure",
			cookie: "boom",
			setup: func(m *mockResolver) {
				m.On("CurrentUser", mock.Anything, "boom").Return(nil, errors.New("redis down"))
			},
			want: "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(mockResolver)
			if tt.setup != nil {
				tt.setup(resolver)
			}

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sessionid", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			newRouter(resolver).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
			resolver.AssertExpectations(t)
		})
	}
}

func TestRequireLoginRedirectsVisitors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/observations/list?page=2", nil)
	w := httptest.NewRecorder()
	newRouter(new(mockResolver)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/?next=%2Fobservations%2Flist%3Fpage%3D2", w.Header().Get("Location"))
}

func TestRequireLoginLetsUsersThrough(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("CurrentUser", mock.Anything, "good").Return(&models.User{ID: 7, Username: "vera"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/observations/list", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "good"})
	w := httptest.NewRecorder()
	newRouter(resolver).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "observations of vera", w.Body.String())
}
