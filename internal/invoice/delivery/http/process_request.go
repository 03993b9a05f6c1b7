package http

import (
	"strconv"

	"fieldservice-srv/internal/invoice"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (invoice.ListInput, model.Scope) {
	input := invoice.ListInput{
		Params: c.Request.URL.Query(),
		Path:   c.Request.URL.Path,
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processDetailRequest(c *gin.Context) (invoice.DetailInput, model.Scope) {
	input := invoice.DetailInput{
		ID: c.Param("invoice_id"),
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processMarkPaidRequest(c *gin.Context) (invoice.MarkPaidInput, model.Scope) {
	input := invoice.MarkPaidInput{
		ID: c.Param("invoice_id"),
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processRevenueSummaryRequest(c *gin.Context) (invoice.RevenueSummaryInput, model.Scope) {
	// min_revenue bounds the report before pagination; it is not one of
	// the filterable report columns, so it is consumed here.
	params := c.Request.URL.Query()
	minRevenue, _ := strconv.ParseFloat(params.Get("min_revenue"), 64)
	params.Del("min_revenue")

	input := invoice.RevenueSummaryInput{
		Params:     params,
		Path:       c.Request.URL.Path,
		MinRevenue: minRevenue,
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}
