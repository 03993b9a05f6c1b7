package http

import (
	"fieldservice-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/people", h.List)
		api.POST("/people", h.Create)
		api.GET("/people/:person_id", h.Detail)
	}
}
