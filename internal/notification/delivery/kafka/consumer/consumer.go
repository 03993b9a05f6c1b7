package consumer

import (
	"context"

	kafkaDelivery "fieldservice-srv/internal/notification/delivery/kafka"
)

// ConsumeWorkOrderEvents starts consuming work-order events.
func (c *Consumer) ConsumeWorkOrderEvents(ctx context.Context) error {
	topic := c.kafkaConfig.Topic
	if topic == "" {
		topic = kafkaDelivery.TopicWorkOrderEvents
	}
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = kafkaDelivery.ConsumerGroupNotifications
	}

	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.workOrderEventsGroup = group

	handler := &workOrderEventsHandler{
		consumer: c,
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}
