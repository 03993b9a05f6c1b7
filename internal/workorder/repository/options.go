package repository

import (
	"net/url"
	"time"
)

type ListWorkOrdersOptions struct {
	Params url.Values
	Path   string
}

type CreateWorkOrderOptions struct {
	CustomerID   string
	TechnicianID string
	Title        string
	Description  string
	Priority     int
	ScheduledAt  *time.Time
}

type UpdateWorkOrderStatusOptions struct {
	ID     string
	Status string
}

type AssignWorkOrderOptions struct {
	ID           string
	TechnicianID string
}
