package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "fieldservice-srv/internal/notification/delivery/kafka"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/scope"
)

// handleWorkOrderEventMessage receives a message, normalizes scope + input and
// delegates to the usecase (no business logic here).
func (c *Consumer) handleWorkOrderEventMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "notification.delivery.kafka.consumer.handleWorkOrderEventMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.WorkOrderEventMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "notification.delivery.kafka.consumer.handleWorkOrderEventMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	if message.TenantID == "" || message.WorkOrderID == "" || message.CustomerID == "" {
		c.l.Warnf(ctx, "notification.delivery.kafka.consumer.handleWorkOrderEventMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	input := toDispatchInput(message)

	sc := model.Scope{
		UserID:   "system",
		TenantID: message.TenantID,
		Role:     "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	if err := c.uc.DispatchWorkOrderEvent(ctx, input); err != nil {
		c.l.Errorf(ctx, "notification.delivery.kafka.consumer.handleWorkOrderEventMessage: usecase DispatchWorkOrderEvent failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "notification.delivery.kafka.consumer.handleWorkOrderEventMessage: Dispatched %s for work order %s",
		message.EventType, message.WorkOrderID)
	return nil
}
