package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	customerRepository "fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/notification"
	"fieldservice-srv/pkg/log"
	"fieldservice-srv/pkg/query"
	"fieldservice-srv/pkg/rabbitmq"
)

type fakeChannel struct {
	exchanges []rabbitmq.ExchangeArgs
	queues    []rabbitmq.QueueArgs
	binds     []rabbitmq.QueueBindArgs
	published []rabbitmq.PublishArgs
	publishErr error
}

func (c *fakeChannel) ExchangeDeclare(exc rabbitmq.ExchangeArgs) error {
	c.exchanges = append(c.exchanges, exc)
	return nil
}

func (c *fakeChannel) QueueDeclare(queue rabbitmq.QueueArgs) (amqp.Queue, error) {
	c.queues = append(c.queues, queue)
	return amqp.Queue{Name: queue.Name}, nil
}

func (c *fakeChannel) QueueBind(queueBind rabbitmq.QueueBindArgs) error {
	c.binds = append(c.binds, queueBind)
	return nil
}

func (c *fakeChannel) Publish(ctx context.Context, publish rabbitmq.PublishArgs) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, publish)
	return nil
}

func (c *fakeChannel) Consume(consume rabbitmq.ConsumeArgs) (<-chan amqp.Delivery, error) {
	return nil, nil
}

func (c *fakeChannel) Close() error { return nil }

func (c *fakeChannel) NotifyReconnect(receiver chan bool) <-chan bool { return receiver }

type fakeCustomerRepo struct {
	settings map[string]model.CustomerSettings
}

func (r *fakeCustomerRepo) ListCustomers(ctx context.Context, sc model.Scope, opt customerRepository.ListCustomersOptions) (query.Page[model.Customer], error) {
	return query.Page[model.Customer]{}, nil
}

func (r *fakeCustomerRepo) GetCustomerByID(ctx context.Context, sc model.Scope, id string) (model.Customer, error) {
	return model.Customer{}, customerRepository.ErrNotFound
}

func (r *fakeCustomerRepo) GetCustomerSettings(ctx context.Context, sc model.Scope, customerID string) (model.CustomerSettings, error) {
	s, ok := r.settings[customerID]
	if !ok {
		return model.CustomerSettings{}, customerRepository.ErrNotFound
	}
	return s, nil
}

func (r *fakeCustomerRepo) UpsertCustomerSettings(ctx context.Context, sc model.Scope, opt customerRepository.UpsertCustomerSettingsOptions) (model.CustomerSettings, error) {
	return model.CustomerSettings{}, nil
}

type fakeCache struct {
	settings map[string]model.CustomerSettings
	saved    []model.CustomerSettings
}

func (c *fakeCache) GetSettings(ctx context.Context, tenantID, customerID string) (model.CustomerSettings, error) {
	s, ok := c.settings[customerID]
	if !ok {
		return model.CustomerSettings{}, customerRepository.ErrCacheMiss
	}
	return s, nil
}

func (c *fakeCache) SaveSettings(ctx context.Context, settings model.CustomerSettings) error {
	c.saved = append(c.saved, settings)
	return nil
}

func (c *fakeCache) InvalidateSettings(ctx context.Context, tenantID, customerID string) error {
	return nil
}

type fakeHTTPClient struct {
	url     string
	body    interface{}
	headers map[string]string
	status  int
	err     error
}

func (c *fakeHTTPClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return nil, 200, nil
}

func (c *fakeHTTPClient) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	c.url = url
	c.body = body
	c.headers = headers
	if c.err != nil {
		return nil, 0, c.err
	}
	status := c.status
	if status == 0 {
		status = 200
	}
	return nil, status, nil
}

func newTestUseCase(t *testing.T, channel *fakeChannel, repo *fakeCustomerRepo, cache *fakeCache, httpClient *fakeHTTPClient) notification.UseCase {
	t.Helper()
	uc, err := New(Config{
		Logger:     log.Init(log.ZapConfig{Level: "error"}),
		Channel:    channel,
		Repo:       repo,
		Cache:      cache,
		HTTPClient: httpClient,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return uc
}

func testInput(eventType string) notification.DispatchInput {
	return notification.DispatchInput{
		EventType:    eventType,
		TenantID:     "tenant-1",
		WorkOrderID:  "wo-1",
		CustomerID:   "cust-1",
		TechnicianID: "tech-1",
		Status:       model.WorkOrderStatusAssigned,
		ActorID:      "user-1",
		OccurredAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNew_DeclaresTopology(t *testing.T) {
	channel := &fakeChannel{}
	newTestUseCase(t, channel, &fakeCustomerRepo{}, &fakeCache{}, &fakeHTTPClient{})

	if len(channel.exchanges) != 1 || channel.exchanges[0].Name != DefaultExchange || channel.exchanges[0].Type != "topic" {
		t.Fatalf("exchanges = %+v, want one topic exchange %q", channel.exchanges, DefaultExchange)
	}
	if len(channel.queues) != 1 || channel.queues[0].Name != DefaultQueue {
		t.Fatalf("queues = %+v, want %q", channel.queues, DefaultQueue)
	}
	if len(channel.binds) != 1 || channel.binds[0].RoutingKey != "workorder.*" {
		t.Fatalf("binds = %+v, want workorder.* binding", channel.binds)
	}
}

func TestDispatchWorkOrderEvent_PublishesWithSettingsEmail(t *testing.T) {
	channel := &fakeChannel{}
	cache := &fakeCache{settings: map[string]model.CustomerSettings{
		"cust-1": {TenantID: "tenant-1", CustomerID: "cust-1", NotifyEmail: "ops@acme.test"},
	}}
	uc := newTestUseCase(t, channel, &fakeCustomerRepo{}, cache, &fakeHTTPClient{})

	if err := uc.DispatchWorkOrderEvent(context.Background(), testInput(model.WorkOrderEventCreated)); err != nil {
		t.Fatalf("DispatchWorkOrderEvent() error = %v", err)
	}

	if len(channel.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(channel.published))
	}
	got := channel.published[0]
	if got.Exchange != DefaultExchange || got.RoutingKey != model.WorkOrderEventCreated {
		t.Errorf("published to %s/%s, want %s/%s", got.Exchange, got.RoutingKey, DefaultExchange, model.WorkOrderEventCreated)
	}

	var msg dispatchMessage
	if err := json.Unmarshal(got.Msg.Body, &msg); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if msg.WorkOrderID != "wo-1" || msg.NotifyEmail != "ops@acme.test" {
		t.Errorf("message = %+v, want wo-1 with notify email", msg)
	}
}

func TestDispatchWorkOrderEvent_StatusChangeSuppressed(t *testing.T) {
	channel := &fakeChannel{}
	cache := &fakeCache{settings: map[string]model.CustomerSettings{
		"cust-1": {TenantID: "tenant-1", CustomerID: "cust-1", NotifyOnStatusChange: false},
	}}
	uc := newTestUseCase(t, channel, &fakeCustomerRepo{}, cache, &fakeHTTPClient{})

	if err := uc.DispatchWorkOrderEvent(context.Background(), testInput(model.WorkOrderEventStatusChanged)); err != nil {
		t.Fatalf("DispatchWorkOrderEvent() error = %v", err)
	}
	if len(channel.published) != 0 {
		t.Fatalf("published %d messages, want 0 when status changes are opt-out", len(channel.published))
	}
}

func TestDispatchWorkOrderEvent_SignsWebhook(t *testing.T) {
	channel := &fakeChannel{}
	httpClient := &fakeHTTPClient{}
	cache := &fakeCache{settings: map[string]model.CustomerSettings{
		"cust-1": {
			TenantID:      "tenant-1",
			CustomerID:    "cust-1",
			WebhookURL:    "https://hooks.acme.test/fieldservice",
			WebhookSecret: "hook-secret",
		},
	}}
	uc := newTestUseCase(t, channel, &fakeCustomerRepo{}, cache, httpClient)

	if err := uc.DispatchWorkOrderEvent(context.Background(), testInput(model.WorkOrderEventAssigned)); err != nil {
		t.Fatalf("DispatchWorkOrderEvent() error = %v", err)
	}

	if httpClient.url != "https://hooks.acme.test/fieldservice" {
		t.Fatalf("webhook url = %q", httpClient.url)
	}
	if httpClient.headers["X-FieldService-Event"] != model.WorkOrderEventAssigned {
		t.Errorf("event header = %q", httpClient.headers["X-FieldService-Event"])
	}

	body, err := json.Marshal(httpClient.body)
	if err != nil {
		t.Fatalf("marshal webhook body: %v", err)
	}
	mac := hmac.New(sha256.New, []byte("hook-secret"))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	if got := httpClient.headers["X-FieldService-Signature"]; got != want {
		t.Errorf("signature = %q, want %q", got, want)
	}
}

func TestDispatchWorkOrderEvent_WebhookFailureDoesNotFailDispatch(t *testing.T) {
	channel := &fakeChannel{}
	httpClient := &fakeHTTPClient{err: errors.New("connection refused")}
	cache := &fakeCache{settings: map[string]model.CustomerSettings{
		"cust-1": {TenantID: "tenant-1", CustomerID: "cust-1", WebhookURL: "https://hooks.acme.test/x"},
	}}
	uc := newTestUseCase(t, channel, &fakeCustomerRepo{}, cache, httpClient)

	if err := uc.DispatchWorkOrderEvent(context.Background(), testInput(model.WorkOrderEventCreated)); err != nil {
		t.Fatalf("DispatchWorkOrderEvent() error = %v, want nil on webhook failure", err)
	}
	if len(channel.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(channel.published))
	}
}

func TestDispatchWorkOrderEvent_CacheMissFallsBackToRepo(t *testing.T) {
	channel := &fakeChannel{}
	cache := &fakeCache{}
	repo := &fakeCustomerRepo{settings: map[string]model.CustomerSettings{
		"cust-1": {TenantID: "tenant-1", CustomerID: "cust-1", NotifyEmail: "ops@acme.test"},
	}}
	uc := newTestUseCase(t, channel, repo, cache, &fakeHTTPClient{})

	if err := uc.DispatchWorkOrderEvent(context.Background(), testInput(model.WorkOrderEventCreated)); err != nil {
		t.Fatalf("DispatchWorkOrderEvent() error = %v", err)
	}
	if len(cache.saved) != 1 {
		t.Fatalf("cache saved %d entries, want 1", len(cache.saved))
	}
	if len(channel.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(channel.published))
	}
}

func TestDispatchWorkOrderEvent_NoSettingsDispatchesDefaults(t *testing.T) {
	channel := &fakeChannel{}
	uc := newTestUseCase(t, channel, &fakeCustomerRepo{}, &fakeCache{}, &fakeHTTPClient{})

	if err := uc.DispatchWorkOrderEvent(context.Background(), testInput(model.WorkOrderEventCreated)); err != nil {
		t.Fatalf("DispatchWorkOrderEvent() error = %v", err)
	}
	if len(channel.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(channel.published))
	}
}

func TestDispatchWorkOrderEvent_RejectsIncompleteEvent(t *testing.T) {
	uc := newTestUseCase(t, &fakeChannel{}, &fakeCustomerRepo{}, &fakeCache{}, &fakeHTTPClient{})

	input := testInput(model.WorkOrderEventCreated)
	input.CustomerID = ""
	if err := uc.DispatchWorkOrderEvent(context.Background(), input); !errors.Is(err, notification.ErrInvalidEvent) {
		t.Fatalf("DispatchWorkOrderEvent() error = %v, want %v", err, notification.ErrInvalidEvent)
	}
}
