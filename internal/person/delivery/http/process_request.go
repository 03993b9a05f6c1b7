package http

import (
	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/person"
	"fieldservice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (person.ListInput, model.Scope) {
	input := person.ListInput{
		Params: c.Request.URL.Query(),
		Path:   c.Request.URL.Path,
	}
	return input, scope.GetScopeFromContext(c.Request.Context())
}

func (h *handler) processDetailRequest(c *gin.Context) (person.DetailInput, model.Scope) {
	input := person.DetailInput{
		ID: c.Param("person_id"),
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
