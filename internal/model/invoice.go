package model

import "time"

// Invoice statuses.
const (
	InvoiceStatusDraft   = "DRAFT"
	InvoiceStatusSent    = "SENT"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusOverdue = "OVERDUE"
	InvoiceStatusVoid    = "VOID"
)

// Invoice represents a customer invoice.
type Invoice struct {
	ID          string
	TenantID    string
	CustomerID  string
	WorkOrderID string

	Number   string
	Status   string // DRAFT | SENT | PAID | OVERDUE | VOID
	Total    float64
	Currency string

	IssuedDate time.Time
	DueDate    *time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CustomerRevenue is one row of the revenue summary report: total invoiced
// amounts aggregated per customer.
type CustomerRevenue struct {
	CustomerID   string
	CustomerName string
	InvoiceCount int64
	Revenue      float64
	PaidRevenue  float64
}
