package routes

import (
	"github.com/gin-gonic/gin"

	"sqlconsole/internal/handlers"
)

type QueryRoutes struct {
	handler *handlers.QueryHandler
}

func NewQueryRoutes(handler *handlers.QueryHandler) *QueryRoutes {
	return &QueryRoutes{handler: handler}
}

func (r *QueryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	sql := router.Group("/sql")
	{
		sql.POST("/execute", r.handler.Execute)
		sql.GET("/history", r.handler.History)
	}
}
