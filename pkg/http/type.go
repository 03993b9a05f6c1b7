package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client. Zero values fall
// back to the package defaults via DefaultConfig.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
