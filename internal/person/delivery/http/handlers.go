package http

import (
	"fieldservice-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List people
// @Description Paginate people with whitelist-checked filters, including the computed person_name filter
// @Tags Person
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20, max 200)"
// @Param sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param person_name query string false "Filter on the computed full name, use % for contains"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/people [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processListRequest(c)

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "person.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get person detail
// @Tags Person
// @Accept json
// @Produce json
// @Param person_id path string true "Person ID"
// @Success 200 {object} personResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/people/{person_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processDetailRequest(c)

	p, err := h.uc.Detail(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "person.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPersonResp(p))
}

// @Summary Create person
// @Tags Person
// @Accept json
// @Produce json
// @Param body body createReq true "Create request"
// @Success 200 {object} personResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/people [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "person.delivery.http.Create: processCreateRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "person.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPersonResp(p))
}
