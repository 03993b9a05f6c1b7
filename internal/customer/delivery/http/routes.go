package http

import (
	"fieldservice-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/customers", h.List)
		api.GET("/customers/:customer_id", h.Detail)
		api.GET("/customers/:customer_id/settings", h.GetSettings)
		api.PUT("/customers/:customer_id/settings", h.UpdateSettings)
	}
}
