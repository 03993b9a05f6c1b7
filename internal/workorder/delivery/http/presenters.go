package http

import (
	"time"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/response"
)

type createReq struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	TechnicianID string `json:"technician_id,omitempty"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description,omitempty"`
	Priority     int    `json:"priority,omitempty"`
	ScheduledAt  string `json:"scheduled_at,omitempty"`
}

func (r createReq) toInput() (workorder.CreateInput, error) {
	input := workorder.CreateInput{
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		Title:        r.Title,
		Description:  r.Description,
		Priority:     r.Priority,
	}
	if r.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, r.ScheduledAt)
		if err != nil {
			return input, err
		}
		input.ScheduledAt = &t
	}
	return input, nil
}

type updateStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) toInput() workorder.UpdateStatusInput {
	return workorder.UpdateStatusInput{
		ID:     r.ID,
		Status: r.Status,
	}
}

type assignReq struct {
	ID           string `json:"-"`
	TechnicianID string `json:"technician_id" binding:"required"`
}

func (r assignReq) toInput() workorder.AssignInput {
	return workorder.AssignInput{
		ID:           r.ID,
		TechnicianID: r.TechnicianID,
	}
}

type workOrderResp struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	TechnicianID string `json:"technician_id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	Priority     int    `json:"priority"`
	ScheduledAt  string `json:"scheduled_at,omitempty"`
	CompletedAt  string `json:"completed_at,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type listResp struct {
	WorkOrders []workOrderResp             `json:"work_orders"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func (h *handler) newWorkOrderResp(wo model.WorkOrder) workOrderResp {
	resp := workOrderResp{
		ID:           wo.ID,
		CustomerID:   wo.CustomerID,
		CustomerName: wo.CustomerName,
		TechnicianID: wo.TechnicianID,
		Title:        wo.Title,
		Description:  wo.Description,
		Status:       wo.Status,
		Priority:     wo.Priority,
		CreatedAt:    wo.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt:    wo.UpdatedAt.Format(response.DateTimeFormat),
	}
	if wo.ScheduledAt != nil {
		resp.ScheduledAt = wo.ScheduledAt.Format(response.DateTimeFormat)
	}
	if wo.CompletedAt != nil {
		resp.CompletedAt = wo.CompletedAt.Format(response.DateTimeFormat)
	}
	return resp
}

func (h *handler) newListResp(o workorder.ListOutput) listResp {
	items := make([]workOrderResp, 0, len(o.WorkOrders))
	for _, wo := range o.WorkOrders {
		items = append(items, h.newWorkOrderResp(wo))
	}

	pagination := o.Pagination.ToResponse()
	pagination.Path = o.Path

	return listResp{
		WorkOrders: items,
		Pagination: pagination,
	}
}
