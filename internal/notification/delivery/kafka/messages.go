package kafka

import (
	"time"
)

// WorkOrderEventMessage is the Kafka message for work-order events.
type WorkOrderEventMessage struct {
	EventType    string    `json:"event_type"`
	TenantID     string    `json:"tenant_id"`
	WorkOrderID  string    `json:"work_order_id"`
	CustomerID   string    `json:"customer_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Status       string    `json:"status"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
