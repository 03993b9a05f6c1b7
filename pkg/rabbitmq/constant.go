package rabbitmq

import "time"

const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second
	ContentTypeJSON        = "application/json"
	ExchangeTypeTopic      = "topic"
)
