package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	customerRepository "fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/notification"
	"fieldservice-srv/pkg/rabbitmq"
)

// dispatchMessage is the payload published to the dispatch queue.
type dispatchMessage struct {
	EventType    string    `json:"event_type"`
	TenantID     string    `json:"tenant_id"`
	WorkOrderID  string    `json:"work_order_id"`
	CustomerID   string    `json:"customer_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Status       string    `json:"status"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
	NotifyEmail  string    `json:"notify_email,omitempty"`
}

func (uc *implUseCase) DispatchWorkOrderEvent(ctx context.Context, input notification.DispatchInput) error {
	if input.TenantID == "" || input.WorkOrderID == "" || input.CustomerID == "" {
		return notification.ErrInvalidEvent
	}

	settings, err := uc.loadSettings(ctx, input.TenantID, input.CustomerID)
	if err != nil {
		return err
	}

	// Status changes are opt-in per customer, lifecycle events always go out.
	if input.EventType == model.WorkOrderEventStatusChanged && !settings.NotifyOnStatusChange {
		uc.l.Debugf(ctx, "notification.usecase.DispatchWorkOrderEvent: status change for %s suppressed by settings", input.WorkOrderID)
		return nil
	}

	if err := uc.publishDispatch(ctx, input, settings); err != nil {
		return err
	}

	if settings.WebhookURL != "" {
		if err := uc.sendWebhook(ctx, input, settings); err != nil {
			// A broken customer endpoint must not block the queue.
			uc.l.Warnf(ctx, "notification.usecase.DispatchWorkOrderEvent: webhook for %s failed: %v", input.CustomerID, err)
		}
	}

	if uc.discord != nil {
		details := fmt.Sprintf("work order %s (customer %s, status %s)", input.WorkOrderID, input.CustomerID, input.Status)
		if err := uc.discord.SendActivityLog(ctx, input.EventType, input.ActorID, details); err != nil {
			uc.l.Warnf(ctx, "notification.usecase.DispatchWorkOrderEvent: discord activity log failed: %v", err)
		}
	}

	return nil
}

// loadSettings reads customer settings through the cache. Customers without
// stored settings dispatch with defaults.
func (uc *implUseCase) loadSettings(ctx context.Context, tenantID, customerID string) (model.CustomerSettings, error) {
	settings, err := uc.cache.GetSettings(ctx, tenantID, customerID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, customerRepository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "notification.usecase.loadSettings: cache read failed: %v", err)
	}

	sc := model.Scope{TenantID: tenantID}
	settings, err = uc.repo.GetCustomerSettings(ctx, sc, customerID)
	if err != nil {
		if errors.Is(err, customerRepository.ErrNotFound) {
			return model.CustomerSettings{TenantID: tenantID, CustomerID: customerID}, nil
		}
		uc.l.Errorf(ctx, "notification.usecase.loadSettings: GetCustomerSettings failed: %v", err)
		return model.CustomerSettings{}, err
	}

	if err := uc.cache.SaveSettings(ctx, settings); err != nil {
		uc.l.Warnf(ctx, "notification.usecase.loadSettings: cache write failed: %v", err)
	}

	return settings, nil
}

func (uc *implUseCase) publishDispatch(ctx context.Context, input notification.DispatchInput, settings model.CustomerSettings) error {
	msg := dispatchMessage{
		EventType:    input.EventType,
		TenantID:     input.TenantID,
		WorkOrderID:  input.WorkOrderID,
		CustomerID:   input.CustomerID,
		TechnicianID: input.TechnicianID,
		Status:       input.Status,
		ActorID:      input.ActorID,
		OccurredAt:   input.OccurredAt,
		NotifyEmail:  settings.NotifyEmail,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.publishDispatch: marshal failed: %v", err)
		return err
	}

	err = uc.channel.Publish(ctx, rabbitmq.PublishArgs{
		Exchange:   uc.exchange,
		RoutingKey: input.EventType,
		Msg: rabbitmq.Publishing{
			ContentType:  rabbitmq.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.publishDispatch: publish to %s failed: %v", uc.exchange, err)
		return notification.ErrPublishFailed
	}

	return nil
}

// sendWebhook posts the event to the customer endpoint. The body is signed
// with the customer webhook secret so receivers can verify the sender.
func (uc *implUseCase) sendWebhook(ctx context.Context, input notification.DispatchInput, settings model.CustomerSettings) error {
	payload := dispatchMessage{
		EventType:    input.EventType,
		TenantID:     input.TenantID,
		WorkOrderID:  input.WorkOrderID,
		CustomerID:   input.CustomerID,
		TechnicianID: input.TechnicianID,
		Status:       input.Status,
		ActorID:      input.ActorID,
		OccurredAt:   input.OccurredAt,
	}

	headers := map[string]string{
		"X-FieldService-Event": input.EventType,
	}
	if settings.WebhookSecret != "" {
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		mac := hmac.New(sha256.New, []byte(settings.WebhookSecret))
		mac.Write(body)
		headers["X-FieldService-Signature"] = hex.EncodeToString(mac.Sum(nil))
	}

	_, status, err := uc.httpClient.Post(ctx, settings.WebhookURL, payload, headers)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", notification.ErrWebhookRejected, status)
	}

	return nil
}
