package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout. Kept short because
	// the main consumer is outbound tenant webhooks on the event path.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second

	// UserAgent identifies this service on outbound requests.
	UserAgent = "fieldservice-srv/1.0"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
