package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type workOrderEventsHandler struct {
	consumer *Consumer
}

func (h *workOrderEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *workOrderEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *workOrderEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleWorkOrderEventMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "notification.delivery.kafka.consumer.ConsumeWorkOrderEvents: Failed to process work order event: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
