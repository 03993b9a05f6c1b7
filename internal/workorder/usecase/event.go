package usecase

import (
	"context"
	"encoding/json"
	"time"

	"fieldservice-srv/internal/model"
)

// publishEvent emits a work-order event keyed by the order ID so all events
// for one order land on the same partition. Publish failures are logged and
// never fail the originating request.
func (uc *implUseCase) publishEvent(ctx context.Context, sc model.Scope, eventType string, wo model.WorkOrder) {
	if uc.producer == nil {
		return
	}

	event := model.WorkOrderEvent{
		EventType:    eventType,
		TenantID:     wo.TenantID,
		WorkOrderID:  wo.ID,
		CustomerID:   wo.CustomerID,
		TechnicianID: wo.TechnicianID,
		Status:       wo.Status,
		ActorID:      sc.UserID,
		OccurredAt:   time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "workorder.usecase.publishEvent: marshal failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(wo.ID), value); err != nil {
		uc.l.Errorf(ctx, "workorder.usecase.publishEvent: publish %s failed: %v", eventType, err)
	}
}
