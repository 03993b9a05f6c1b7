package model

import "time"

// CustomerSettings is the per-tenant customer configuration. WebhookSecret
// is stored encrypted at rest; the repository decrypts it on read.
type CustomerSettings struct {
	ID         string
	TenantID   string
	CustomerID string

	NotifyOnStatusChange bool
	NotifyEmail          string
	WebhookURL           string
	WebhookSecret        string
	InvoiceDueDays       int

	CreatedAt time.Time
	UpdatedAt time.Time
}
