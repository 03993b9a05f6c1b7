package http

import (
	"fieldservice-srv/internal/invoice"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/response"
)

type invoiceResp struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customer_id"`
	WorkOrderID string  `json:"work_order_id,omitempty"`
	Number      string  `json:"number"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`
	IssuedDate  string  `json:"issued_date"`
	DueDate     string  `json:"due_date,omitempty"`
	PaidAt      string  `json:"paid_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type listResp struct {
	Invoices   []invoiceResp               `json:"invoices"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

type customerRevenueResp struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	InvoiceCount int64   `json:"invoice_count"`
	Revenue      float64 `json:"revenue"`
	PaidRevenue  float64 `json:"paid_revenue"`
}

type revenueSummaryResp struct {
	Customers  []customerRevenueResp       `json:"customers"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func (h *handler) newInvoiceResp(inv model.Invoice) invoiceResp {
	resp := invoiceResp{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		WorkOrderID: inv.WorkOrderID,
		Number:      inv.Number,
		Status:      inv.Status,
		Total:       inv.Total,
		Currency:    inv.Currency,
		IssuedDate:  inv.IssuedDate.Format(response.DateFormat),
		CreatedAt:   inv.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt:   inv.UpdatedAt.Format(response.DateTimeFormat),
	}
	if inv.DueDate != nil {
		resp.DueDate = inv.DueDate.Format(response.DateFormat)
	}
	if inv.PaidAt != nil {
		resp.PaidAt = inv.PaidAt.Format(response.DateTimeFormat)
	}
	return resp
}

func (h *handler) newListResp(o invoice.ListOutput) listResp {
	items := make([]invoiceResp, 0, len(o.Invoices))
	for _, inv := range o.Invoices {
		items = append(items, h.newInvoiceResp(inv))
	}

	pagination := o.Pagination.ToResponse()
	pagination.Path = o.Path

	return listResp{
		Invoices:   items,
		Pagination: pagination,
	}
}

func (h *handler) newRevenueSummaryResp(o invoice.RevenueSummaryOutput) revenueSummaryResp {
	items := make([]customerRevenueResp, 0, len(o.Rows))
	for _, row := range o.Rows {
		items = append(items, customerRevenueResp{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			InvoiceCount: row.InvoiceCount,
			Revenue:      row.Revenue,
			PaidRevenue:  row.PaidRevenue,
		})
	}

	pagination := o.Pagination.ToResponse()
	pagination.Path = o.Path

	return revenueSummaryResp{
		Customers:  items,
		Pagination: pagination,
	}
}
