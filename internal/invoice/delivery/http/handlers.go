package http

import (
	"fieldservice-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List invoices
// @Description Paginate invoices with whitelist-checked filters, sorting and field selection
// @Tags Invoice
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20, max 200)"
// @Param sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param status query string false "Filter by status, separate multiple values with ;"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/invoices [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processListRequest(c)

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "invoice.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get invoice detail
// @Tags Invoice
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} invoiceResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/invoices/{invoice_id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processDetailRequest(c)

	inv, err := h.uc.Detail(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "invoice.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInvoiceResp(inv))
}

// @Summary Mark invoice as paid
// @Tags Invoice
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} invoiceResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/invoices/{invoice_id}/pay [patch]
func (h *handler) MarkPaid(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processMarkPaidRequest(c)

	inv, err := h.uc.MarkPaid(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "invoice.delivery.http.MarkPaid: usecase MarkPaid failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInvoiceResp(inv))
}

// @Summary Revenue summary per customer
// @Description Paginate invoiced revenue aggregated per customer
// @Tags Invoice
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20, max 200)"
// @Param sort query string false "Comma-separated sort columns, prefix with - for descending"
// @Param min_revenue query number false "Only include customers with at least this revenue"
// @Success 200 {object} revenueSummaryResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/revenue [get]
func (h *handler) RevenueSummary(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processRevenueSummaryRequest(c)

	o, err := h.uc.RevenueSummary(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "invoice.delivery.http.RevenueSummary: usecase RevenueSummary failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRevenueSummaryResp(o))
}
