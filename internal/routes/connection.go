package routes

import (
	"github.com/gin-gonic/gin"

	"sqlconsole/internal/handlers"
)

type ConnectionRoutes struct {
	handler *handlers.ConnectionHandler
}

func NewConnectionRoutes(handler *handlers.ConnectionHandler) *ConnectionRoutes {
	return &ConnectionRoutes{handler: handler}
}

func (r *ConnectionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	connections := router.Group("/connections")
	{
		connections.GET("", r.handler.List)
		connections.POST("", r.handler.Create)
		connections.POST("/test", r.handler.Test)
		connections.PUT("/:id", r.handler.Update)
		connections.DELETE("/:id", r.handler.Delete)
	}
}
