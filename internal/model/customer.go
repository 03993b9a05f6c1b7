package model

import "time"

// Customer represents a company the tenant does business with.
type Customer struct {
	ID       string
	TenantID string

	Name    string
	Email   string
	Phone   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}
