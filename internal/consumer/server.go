package consumer

import (
	"context"
	"database/sql"

	"fieldservice-srv/config"
	"fieldservice-srv/pkg/discord"
	"fieldservice-srv/pkg/encrypter"
	pkgHTTP "fieldservice-srv/pkg/http"
	"fieldservice-srv/pkg/log"
	"fieldservice-srv/pkg/rabbitmq"
	"fieldservice-srv/pkg/redis"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	kafkaConfig config.KafkaConfig
	rabbitMQCfg config.RabbitMQConfig

	// Infrastructure clients
	postgresDB   *sql.DB
	redisClient  redis.IRedis
	rabbitClient rabbitmq.IRabbitMQ
	httpClient   pkgHTTP.IClient
	encrypter    encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	RabbitMQCfg config.RabbitMQConfig

	// Infrastructure clients
	PostgresDB   *sql.DB
	RedisClient  redis.IRedis
	RabbitClient rabbitmq.IRabbitMQ
	HTTPClient   pkgHTTP.IClient
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
