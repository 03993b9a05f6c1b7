package customer

import (
	"net/url"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
)

type ListInput struct {
	Params url.Values
	Path   string
}

type ListOutput struct {
	Customers  []model.Customer
	Pagination paginator.Paginator
	Path       string
}

type DetailInput struct {
	ID string
}

type GetSettingsInput struct {
	CustomerID string
}

type UpdateSettingsInput struct {
	CustomerID           string
	NotifyOnStatusChange bool
	NotifyEmail          string
	WebhookURL           string
	WebhookSecret        string
	InvoiceDueDays       int
}
