package notification

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	DispatchWorkOrderEvent(ctx context.Context, input DispatchInput) error
}
