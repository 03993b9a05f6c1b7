package http

import (
	"fieldservice-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/invoices", h.List)
		api.GET("/invoices/:invoice_id", h.Detail)
		api.PATCH("/invoices/:invoice_id/pay", h.MarkPaid)
		api.GET("/reports/revenue", h.RevenueSummary)
	}
}
