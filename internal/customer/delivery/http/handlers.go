package http

import (
	"fieldservice-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List customers
// @Description Paginate customers with whitelist-checked filters, sorting and field selection
// @Tags Customer
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20, max 200)"
// @Param sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param name query string false "Filter by name, use % for contains"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/customers [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processListRequest(c)

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "customer.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get customer detail
// @Tags Customer
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} customerResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/customers/{customer_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processDetailRequest(c)

	cust, err := h.uc.Detail(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "customer.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCustomerResp(cust))
}

// @Summary Get customer notification settings
// @Tags Customer
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} settingsResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/customers/{customer_id}/settings [get]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processGetSettingsRequest(c)

	s, err := h.uc.GetSettings(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "customer.delivery.http.GetSettings: usecase GetSettings failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// @Summary Update customer notification settings
// @Tags Customer
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param body body updateSettingsReq true "Settings"
// @Success 200 {object} settingsResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/customers/{customer_id}/settings [put]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateSettingsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "customer.delivery.http.UpdateSettings: processUpdateSettingsRequest failed: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	s, err := h.uc.UpdateSettings(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "customer.delivery.http.UpdateSettings: usecase UpdateSettings failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}
