package usecase

import (
	"fmt"

	"fieldservice-srv/internal/notification"
	customerRepository "fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/pkg/discord"
	pkgHTTP "fieldservice-srv/pkg/http"
	"fieldservice-srv/pkg/log"
	"fieldservice-srv/pkg/rabbitmq"
)

const (
	// DefaultExchange is the notification fanout exchange.
	DefaultExchange = "fieldservice.notifications"
	// DefaultQueue is the dispatch queue bound to the exchange.
	DefaultQueue = "fieldservice.notifications.dispatch"

	// bindingKey matches every work-order event type.
	bindingKey = "workorder.*"
)

type implUseCase struct {
	l          log.Logger
	channel    rabbitmq.IChannel
	repo       customerRepository.PostgresRepository
	cache      customerRepository.CacheRepository
	httpClient pkgHTTP.IClient
	discord    discord.IDiscord

	exchange string
	queue    string
}

// Config holds dependencies for the notification usecase.
type Config struct {
	Logger     log.Logger
	Channel    rabbitmq.IChannel
	Repo       customerRepository.PostgresRepository
	Cache      customerRepository.CacheRepository
	HTTPClient pkgHTTP.IClient
	Discord    discord.IDiscord

	Exchange string
	Queue    string
}

// New creates the notification usecase and declares the RabbitMQ topology.
func New(cfg Config) (notification.UseCase, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is required")
	}
	if cfg.Repo == nil {
		return nil, fmt.Errorf("customer repository is required")
	}
	if cfg.Cache == nil {
		return nil, fmt.Errorf("customer cache repository is required")
	}
	if cfg.HTTPClient == nil {
		return nil, fmt.Errorf("http client is required")
	}

	uc := &implUseCase{
		l:          cfg.Logger,
		channel:    cfg.Channel,
		repo:       cfg.Repo,
		cache:      cfg.Cache,
		httpClient: cfg.HTTPClient,
		discord:    cfg.Discord,
		exchange:   cfg.Exchange,
		queue:      cfg.Queue,
	}
	if uc.exchange == "" {
		uc.exchange = DefaultExchange
	}
	if uc.queue == "" {
		uc.queue = DefaultQueue
	}

	if err := uc.declareTopology(); err != nil {
		return nil, err
	}

	return uc, nil
}

func (uc *implUseCase) declareTopology() error {
	if err := uc.channel.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    uc.exchange,
		Type:    rabbitmq.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("declare exchange %s: %w", uc.exchange, err)
	}

	if _, err := uc.channel.QueueDeclare(rabbitmq.QueueArgs{
		Name:    uc.queue,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("declare queue %s: %w", uc.queue, err)
	}

	if err := uc.channel.QueueBind(rabbitmq.QueueBindArgs{
		Queue:      uc.queue,
		Exchange:   uc.exchange,
		RoutingKey: bindingKey,
	}); err != nil {
		return fmt.Errorf("bind queue %s to %s: %w", uc.queue, uc.exchange, err)
	}

	return nil
}
