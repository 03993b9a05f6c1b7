package workorder

import (
	"net/url"
	"time"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
)

type ListInput struct {
	Params url.Values
	Path   string
}

type ListOutput struct {
	WorkOrders []model.WorkOrder
	Pagination paginator.Paginator
	Path       string
}

type DetailInput struct {
	ID string
}

type CreateInput struct {
	CustomerID   string
	TechnicianID string
	Title        string
	Description  string
	Priority     int
	ScheduledAt  *time.Time
}

type UpdateStatusInput struct {
	ID     string
	Status string
}

type AssignInput struct {
	ID           string
	TechnicianID string
}
