package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sqlconsole/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, authHandler *handlers.AuthHandler, connectionHandler *handlers.ConnectionHandler, queryHandler *handlers.QueryHandler) {
	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(&router.RouterGroup)

	connectionRoutes := NewConnectionRoutes(connectionHandler)
	connectionRoutes.RegisterRoutes(&router.RouterGroup)

	queryRoutes := NewQueryRoutes(queryHandler)
	queryRoutes.RegisterRoutes(&router.RouterGroup)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
