package consumer

import (
	"fmt"

	"fieldservice-srv/config"
	"fieldservice-srv/internal/notification"
	pkgKafka "fieldservice-srv/pkg/kafka"
	"fieldservice-srv/pkg/log"
)

// Config holds the configuration for the notification consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     notification.UseCase
}

// Consumer manages the Kafka consumer group for work-order events.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          notification.UseCase

	workOrderEventsGroup pkgKafka.IConsumer
}

// New creates a new notification consumer.
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c.workOrderEventsGroup != nil {
		if err := c.workOrderEventsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close work order events group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group.
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
