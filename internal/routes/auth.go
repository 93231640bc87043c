package routes

import (
	"github.com/gin-gonic/gin"

	"nebulanotes/internal/handlers"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
}

func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", r.handler.Home)
	router.GET("/home/", r.handler.Home)

	router.GET("/login/", r.handler.LoginForm)
	router.POST("/login/", r.handler.Login)
	router.GET("/logout/", r.handler.Logout)
	router.POST("/logout/", r.handler.Logout)
	router.GET("/register/", r.handler.RegisterForm)
	router.POST("/register/", r.handler.Register)
}
