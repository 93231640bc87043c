package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"

	"nebulanotes/internal/logger"
	"nebulanotes/internal/models"
)

// UserKey holds the *models.User of the session, absent for visitors.
const UserKey = "user"

type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// LoadSession resolves the session cookie and stores the user in the context.
// A lookup failure is logged and the request continues anonymously.
func LoadSession(auth SessionResolver, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			log.Error("Failed to resolve session", "error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}
		if user != nil {
			c.Set(UserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the session user or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
