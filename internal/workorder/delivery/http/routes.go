package http

import (
	"fieldservice-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/work-orders", h.List)
		api.POST("/work-orders", h.Create)
		api.GET("/work-orders/:work_order_id", h.Detail)
		api.PATCH("/work-orders/:work_order_id/status", h.UpdateStatus)
		api.PATCH("/work-orders/:work_order_id/assign", h.Assign)
	}
}
