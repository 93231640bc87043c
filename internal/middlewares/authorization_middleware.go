package middlewares

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// LoginURL is where anonymous visitors of protected pages are sent.
const LoginURL = "/login/"

// RequireLogin must run after LoadSession. Visitors without a session are
// redirected to the login page with next set to the requested URI.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}
