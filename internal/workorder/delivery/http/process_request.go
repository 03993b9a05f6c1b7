package http

import (
	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder"
	"fieldservice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (workorder.ListInput, model.Scope) {
	input := workorder.ListInput{
		Params: c.Request.URL.Query(),
		Path:   c.Request.URL.Path,
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processDetailRequest(c *gin.Context) (workorder.DetailInput, model.Scope) {
	input := workorder.DetailInput{
		ID: c.Param("work_order_id"),
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processUpdateStatusRequest(c *gin.Context) (updateStatusReq, model.Scope, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	req.ID = c.Param("work_order_id")
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processAssignRequest(c *gin.Context) (assignReq, model.Scope, error) {
	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	req.ID = c.Param("work_order_id")
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}
