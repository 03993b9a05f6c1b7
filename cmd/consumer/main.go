package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fieldservice-srv/config"
	configPostgre "fieldservice-srv/config/postgre"
	configRabbit "fieldservice-srv/config/rabbitmq"
	configRedis "fieldservice-srv/config/redis"
	"fieldservice-srv/internal/consumer"
	"fieldservice-srv/pkg/discord"
	"fieldservice-srv/pkg/encrypter"
	pkgHTTP "fieldservice-srv/pkg/http"
	"fieldservice-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Field Service Consumer...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL connected")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// RabbitMQ
	rabbitClient, err := configRabbit.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Info(ctx, "RabbitMQ client initialized")

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:      logger,
		KafkaConfig: cfg.Kafka,
		RabbitMQCfg: cfg.RabbitMQ,

		PostgresDB:   postgresDB,
		RedisClient:  redisClient,
		RabbitClient: rabbitClient,
		HTTPClient:   pkgHTTP.NewClient(pkgHTTP.DefaultConfig()),
		Encrypter:    encrypter.New(cfg.Encrypter.Key),

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server stopped with error: %v", err)
	}
}
