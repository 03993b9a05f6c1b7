package notification

import (
	"errors"
)

var (
	ErrInvalidEvent    = errors.New("notification: invalid event")
	ErrPublishFailed   = errors.New("notification: publish failed")
	ErrWebhookRejected = errors.New("notification: webhook rejected")
)
