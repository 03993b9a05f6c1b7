package http

import (
	"fieldservice-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List work orders
// @Description Paginate work orders with whitelist-checked filters, sorting and field selection
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20, max 200)"
// @Param sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param fields query string false "Comma-separated columns to return"
// @Param status query string false "Filter by status, separate multiple values with ;"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/work-orders [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processListRequest(c)

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get work order detail
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param work_order_id path string true "Work order ID"
// @Success 200 {object} workOrderResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/work-orders/{work_order_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processDetailRequest(c)

	wo, err := h.uc.Detail(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkOrderResp(wo))
}

// @Summary Create work order
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param body body createReq true "Create request"
// @Success 200 {object} workOrderResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/work-orders [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.Create: processCreateRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "scheduled_at must be RFC3339")
		return
	}

	wo, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkOrderResp(wo))
}

// @Summary Update work order status
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param work_order_id path string true "Work order ID"
// @Param body body updateStatusReq true "Status update request"
// @Success 200 {object} workOrderResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/work-orders/{work_order_id}/status [patch]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateStatusRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.UpdateStatus: processUpdateStatusRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	wo, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.UpdateStatus: usecase UpdateStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkOrderResp(wo))
}

// @Summary Assign work order to a technician
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param work_order_id path string true "Work order ID"
// @Param body body assignReq true "Assign request"
// @Success 200 {object} workOrderResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/work-orders/{work_order_id}/assign [patch]
func (h *handler) Assign(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAssignRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.Assign: processAssignRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	wo, err := h.uc.Assign(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "workorder.delivery.http.Assign: usecase Assign failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkOrderResp(wo))
}
