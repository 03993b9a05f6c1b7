package http

import (
	"fieldservice-srv/internal/customer"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (customer.ListInput, model.Scope) {
	input := customer.ListInput{
		Params: c.Request.URL.Query(),
		Path:   c.Request.URL.Path,
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processDetailRequest(c *gin.Context) (customer.DetailInput, model.Scope) {
	input := customer.DetailInput{
		ID: c.Param("customer_id"),
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processGetSettingsRequest(c *gin.Context) (customer.GetSettingsInput, model.Scope) {
	input := customer.GetSettingsInput{
		CustomerID: c.Param("customer_id"),
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processUpdateSettingsRequest(c *gin.Context) (updateSettingsReq, model.Scope, error) {
	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	req.CustomerID = c.Param("customer_id")
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}
