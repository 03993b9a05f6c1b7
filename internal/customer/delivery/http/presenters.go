package http

import (
	"fieldservice-srv/internal/customer"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/response"
)

type updateSettingsReq struct {
	CustomerID           string `json:"-"`
	NotifyOnStatusChange bool   `json:"notify_on_status_change"`
	NotifyEmail          string `json:"notify_email,omitempty"`
	WebhookURL           string `json:"webhook_url,omitempty"`
	WebhookSecret        string `json:"webhook_secret,omitempty"`
	InvoiceDueDays       int    `json:"invoice_due_days,omitempty"`
}

func (r updateSettingsReq) toInput() customer.UpdateSettingsInput {
	return customer.UpdateSettingsInput{
		CustomerID:           r.CustomerID,
		NotifyOnStatusChange: r.NotifyOnStatusChange,
		NotifyEmail:          r.NotifyEmail,
		WebhookURL:           r.WebhookURL,
		WebhookSecret:        r.WebhookSecret,
		InvoiceDueDays:       r.InvoiceDueDays,
	}
}

type customerResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type listResp struct {
	Customers  []customerResp              `json:"customers"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

// settingsResp never echoes the webhook secret; it only reports whether one
// is configured.
type settingsResp struct {
	CustomerID           string `json:"customer_id"`
	NotifyOnStatusChange bool   `json:"notify_on_status_change"`
	NotifyEmail          string `json:"notify_email,omitempty"`
	WebhookURL           string `json:"webhook_url,omitempty"`
	HasWebhookSecret     bool   `json:"has_webhook_secret"`
	InvoiceDueDays       int    `json:"invoice_due_days"`
}

func (h *handler) newCustomerResp(c model.Customer) customerResp {
	return customerResp{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(response.DateTimeFormat),
	}
}

func (h *handler) newListResp(o customer.ListOutput) listResp {
	items := make([]customerResp, 0, len(o.Customers))
	for _, c := range o.Customers {
		items = append(items, h.newCustomerResp(c))
	}

	pagination := o.Pagination.ToResponse()
	pagination.Path = o.Path

	return listResp{
		Customers:  items,
		Pagination: pagination,
	}
}

func (h *handler) newSettingsResp(s model.CustomerSettings) settingsResp {
	return settingsResp{
		CustomerID:           s.CustomerID,
		NotifyOnStatusChange: s.NotifyOnStatusChange,
		NotifyEmail:          s.NotifyEmail,
		WebhookURL:           s.WebhookURL,
		HasWebhookSecret:     s.WebhookSecret != "",
		InvoiceDueDays:       s.InvoiceDueDays,
	}
}
