package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/forms"
	"nebulanotes/internal/logger"
	"nebulanotes/internal/middlewares"
	"nebulanotes/internal/models"
	"nebulanotes/internal/responses"
	"nebulanotes/internal/services"
	"nebulanotes/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
	Register(ctx context.Context, in services.RegisterInput) (*models.Session, error)
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	auth   AuthService
	cookie CookieConfig
	log    *logger.Logger
}

func NewAuthHandler(auth AuthService, cookie CookieConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie, log: log}
}

func (h *AuthHandler) Home(c *gin.Context) {
	responses.Render(c, http.StatusOK, responses.Page{
		Template: "home.html",
		Title:    "Welcome to NebulaNotes",
		Data:     gin.H{"user": middlewares.CurrentUser(c)},
	})
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	responses.Render(c, http.StatusOK, loginPage(forms.LoginForm{Next: c.Query("next")}))
}

// Login starts a session and redirects to next when it is a local path, to
// the home page otherwise.
func (h *AuthHandler) Login(c *gin.Context) {
	var f forms.LoginForm
	if ve := forms.Bind(c, &f); ve != nil {
		responses.FormError(c, loginPage(f), ve)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), f.Username, f.Password)
	if err != nil {
		ve := services.NewValidationError()
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			ve.AddNonField(services.MsgUserNotFound)
		case errors.Is(err, services.ErrInvalidCredentials):
			ve.AddNonField(services.MsgWrongPassword)
		default:
			fail(c, h.log, err)
			return
		}
		responses.FormError(c, loginPage(f), ve)
		return
	}

	h.setSessionCookie(c, session.Token)
	responses.Redirect(c, utils.SafeRedirect(f.Next, "/"))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.log.Warn("Failed to revoke session", "error", err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	responses.Redirect(c, "/")
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	responses.Render(c, http.StatusOK, registerPage(forms.RegisterForm{}))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var f forms.RegisterForm
	if ve := forms.Bind(c, &f); ve != nil {
		responses.FormError(c, registerPage(f), ve)
		return
	}

	session, err := h.auth.Register(c.Request.Context(), f.Input())
	if err != nil {
		saveFailed(c, h.log, registerPage(f), err)
		return
	}

	h.setSessionCookie(c, session.Token)
	responses.Redirect(c, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
}

func loginPage(f forms.LoginForm) responses.Page {
	return responses.Page{
		Template: "login.html",
		Title:    "Log in",
		View:     gin.H{"Form": f},
		Data:     f,
	}
}

func registerPage(f forms.RegisterForm) responses.Page {
	return responses.Page{
		Template: "register.html",
		Title:    "Register",
		View:     gin.H{"Form": f},
		Data:     f,
	}
}
