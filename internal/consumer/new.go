package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:            cfg.Logger,
		kafkaConfig:  cfg.KafkaConfig,
		rabbitMQCfg:  cfg.RabbitMQCfg,
		postgresDB:   cfg.PostgresDB,
		redisClient:  cfg.RedisClient,
		rabbitClient: cfg.RabbitClient,
		httpClient:   cfg.HTTPClient,
		encrypter:    cfg.Encrypter,
		discord:      cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
// Discord is optional, without it activity logs stay in the logs.
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.rabbitClient == nil {
		return fmt.Errorf("rabbitmq client is required")
	}
	if srv.httpClient == nil {
		return fmt.Errorf("http client is required")
	}
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	return nil
}
