package routes

import (
	"github.com/gin-gonic/gin"

	"sqlconsole/internal/handlers"
	"sqlconsole/internal/middlewares"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
}

func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", r.handler.Register)
		auth.POST("/login", r.handler.Login)
		auth.POST("/refresh", r.handler.Refresh)
		auth.POST("/logout", r.handler.Logout)
		auth.GET("/me", middlewares.Authenticate, r.handler.Me)
	}
}
