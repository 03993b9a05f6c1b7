package consumer

import (
	kafkaDelivery "fieldservice-srv/internal/notification/delivery/kafka"
	"fieldservice-srv/internal/notification"
)

// toDispatchInput maps the Kafka message DTO to the usecase input.
func toDispatchInput(m kafkaDelivery.WorkOrderEventMessage) notification.DispatchInput {
	return notification.DispatchInput{
		EventType:    m.EventType,
		TenantID:     m.TenantID,
		WorkOrderID:  m.WorkOrderID,
		CustomerID:   m.CustomerID,
		TechnicianID: m.TechnicianID,
		Status:       m.Status,
		ActorID:      m.ActorID,
		OccurredAt:   m.OccurredAt,
	}
}
