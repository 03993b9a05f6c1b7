package notification

import (
	"time"
)

// DispatchInput is a work-order event to fan out to subscribers.
type DispatchInput struct {
	EventType    string
	TenantID     string
	WorkOrderID  string
	CustomerID   string
	TechnicianID string
	Status       string
	ActorID      string
	OccurredAt   time.Time
}
