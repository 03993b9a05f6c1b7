package model

import "time"

// Work order statuses.
const (
	WorkOrderStatusOpen       = "OPEN"
	WorkOrderStatusAssigned   = "ASSIGNED"
	WorkOrderStatusInProgress = "IN_PROGRESS"
	WorkOrderStatusCompleted  = "COMPLETED"
	WorkOrderStatusCancelled  = "CANCELLED"
)

// WorkOrder represents a scheduled field-service job.
type WorkOrder struct {
	ID           string
	TenantID     string
	CustomerID   string
	TechnicianID string

	Title       string
	Description string
	Status      string // OPEN | ASSIGNED | IN_PROGRESS | COMPLETED | CANCELLED
	Priority    int

	ScheduledAt *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CustomerName is populated by listing queries that join customers.
	CustomerName string
}

// WorkOrderEvent is the message published to the work-order event stream on
// every status transition.
type WorkOrderEvent struct {
	EventType    string    `json:"event_type"`
	TenantID     string    `json:"tenant_id"`
	WorkOrderID  string    `json:"work_order_id"`
	CustomerID   string    `json:"customer_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Status       string    `json:"status"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Work order event types.
const (
	WorkOrderEventCreated       = "workorder.created"
	WorkOrderEventStatusChanged = "workorder.status_changed"
	WorkOrderEventAssigned      = "workorder.assigned"
)
