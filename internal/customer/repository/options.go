package repository

import "net/url"

type ListCustomersOptions struct {
	Params url.Values
	Path   string
}

type UpsertCustomerSettingsOptions struct {
	CustomerID           string
	NotifyOnStatusChange bool
	NotifyEmail          string
	WebhookURL           string
	WebhookSecret        string
	InvoiceDueDays       int
}
