package consumer

import (
	"context"
	"fmt"

	customerPostgre "fieldservice-srv/internal/customer/repository/postgre"
	customerRedis "fieldservice-srv/internal/customer/repository/redis"
	notificationConsumer "fieldservice-srv/internal/notification/delivery/kafka/consumer"
	notificationUsecase "fieldservice-srv/internal/notification/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	notificationConsumer *notificationConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Customer settings drive the notification fanout, read through the cache.
	customerRepo := customerPostgre.New(srv.postgresDB, srv.encrypter, srv.l)
	settingsCache := customerRedis.New(srv.redisClient, srv.l)

	channel, err := srv.rabbitClient.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	notificationUC, err := notificationUsecase.New(notificationUsecase.Config{
		Logger:     srv.l,
		Channel:    channel,
		Repo:       customerRepo,
		Cache:      settingsCache,
		HTTPClient: srv.httpClient,
		Discord:    srv.discord,
		Exchange:   srv.rabbitMQCfg.Exchange,
		Queue:      srv.rabbitMQCfg.Queue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification usecase: %w", err)
	}

	notificationCons, err := notificationConsumer.New(notificationConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     notificationUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	srv.l.Infof(ctx, "Notification domain initialized")

	return &domainConsumers{
		notificationConsumer: notificationCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.notificationConsumer.ConsumeWorkOrderEvents(ctx); err != nil {
		return fmt.Errorf("failed to start notification consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.notificationConsumer != nil {
		if err := consumers.notificationConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing notification consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
