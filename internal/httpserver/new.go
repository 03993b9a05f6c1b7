package httpserver

import (
	"database/sql"
	"errors"

	"fieldservice-srv/config"
	"fieldservice-srv/pkg/discord"
	"fieldservice-srv/pkg/encrypter"
	"fieldservice-srv/pkg/kafka"
	"fieldservice-srv/pkg/log"
	pkgRedis "fieldservice-srv/pkg/redis"
	"fieldservice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis
	producer    kafka.IProducer

	config     *config.Config
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	discord discord.IDiscord
}

type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	Producer    kafka.IProducer

	Config     *config.Config
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter

	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		producer:    cfg.Producer,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
// Discord and the Kafka producer are optional: without Discord errors stay
// in the logs, without a producer work-order events are skipped.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	return nil
}
