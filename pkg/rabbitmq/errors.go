package rabbitmq

import "errors"

var ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")
