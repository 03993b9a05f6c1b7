package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder"
	"fieldservice-srv/internal/workorder/repository"
	"fieldservice-srv/pkg/log"
	"fieldservice-srv/pkg/query"
)

type fakeRepository struct {
	workOrders     map[string]model.WorkOrder
	customerExists bool

	created  *repository.CreateWorkOrderOptions
	updated  *repository.UpdateWorkOrderStatusOptions
	assigned *repository.AssignWorkOrderOptions
}

func (r *fakeRepository) ListWorkOrders(ctx context.Context, sc model.Scope, opt repository.ListWorkOrdersOptions) (query.Page[model.WorkOrder], error) {
	return query.Page[model.WorkOrder]{}, nil
}

func (r *fakeRepository) GetWorkOrderByID(ctx context.Context, sc model.Scope, id string) (model.WorkOrder, error) {
	wo, ok := r.workOrders[id]
	if !ok {
		return model.WorkOrder{}, repository.ErrNotFound
	}
	return wo, nil
}

func (r *fakeRepository) CreateWorkOrder(ctx context.Context, sc model.Scope, opt repository.CreateWorkOrderOptions) (model.WorkOrder, error) {
	r.created = &opt
	return model.WorkOrder{
		ID:         "wo-1",
		TenantID:   sc.TenantID,
		CustomerID: opt.CustomerID,
		Title:      opt.Title,
		Priority:   opt.Priority,
		Status:     model.WorkOrderStatusOpen,
	}, nil
}

func (r *fakeRepository) UpdateWorkOrderStatus(ctx context.Context, sc model.Scope, opt repository.UpdateWorkOrderStatusOptions) (model.WorkOrder, error) {
	wo, ok := r.workOrders[opt.ID]
	if !ok {
		return model.WorkOrder{}, repository.ErrNotFound
	}
	r.updated = &opt
	wo.Status = opt.Status
	return wo, nil
}

func (r *fakeRepository) AssignWorkOrder(ctx context.Context, sc model.Scope, opt repository.AssignWorkOrderOptions) (model.WorkOrder, error) {
	wo, ok := r.workOrders[opt.ID]
	if !ok {
		return model.WorkOrder{}, repository.ErrNotFound
	}
	r.assigned = &opt
	wo.TechnicianID = opt.TechnicianID
	wo.Status = model.WorkOrderStatusAssigned
	return wo, nil
}

func (r *fakeRepository) CustomerExists(ctx context.Context, sc model.Scope, customerID string) (bool, error) {
	return r.customerExists, nil
}

type fakeProducer struct {
	published []model.WorkOrderEvent
	err       error
}

func (p *fakeProducer) Publish(key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	var ev model.WorkOrderEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	p.published = append(p.published, ev)
	return nil
}

func (p *fakeProducer) Close() error       { return nil }
func (p *fakeProducer) HealthCheck() error { return nil }

func newTestUseCase(repo *fakeRepository, producer *fakeProducer) workorder.UseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(repo, producer, l)
}

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "user-1", TenantID: "tenant-1"}

	tests := []struct {
		name           string
		input          workorder.CreateInput
		customerExists bool
		wantErr        error
		wantPriority   int
	}{
		{
			name:           "defaults priority",
			input:          workorder.CreateInput{CustomerID: "cust-1", Title: "Fix boiler"},
			customerExists: true,
			wantPriority:   3,
		},
		{
			name:    "missing title",
			input:   workorder.CreateInput{CustomerID: "cust-1", Title: "   "},
			wantErr: workorder.ErrTitleRequired,
		},
		{
			name:    "priority out of range",
			input:   workorder.CreateInput{CustomerID: "cust-1", Title: "Fix boiler", Priority: 9},
			wantErr: workorder.ErrInvalidPriority,
		},
		{
			name:           "unknown customer",
			input:          workorder.CreateInput{CustomerID: "cust-x", Title: "Fix boiler"},
			customerExists: false,
			wantErr:        workorder.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{customerExists: tt.customerExists}
			producer := &fakeProducer{}
			uc := newTestUseCase(repo, producer)

			wo, err := uc.Create(context.Background(), sc, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
				if len(producer.published) != 0 {
					t.Fatalf("Create() published %d events on failure", len(producer.published))
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if wo.Priority != tt.wantPriority {
				t.Errorf("Create() priority = %d, want %d", wo.Priority, tt.wantPriority)
			}
			if len(producer.published) != 1 {
				t.Fatalf("Create() published %d events, want 1", len(producer.published))
			}
			if got := producer.published[0].EventType; got != model.WorkOrderEventCreated {
				t.Errorf("Create() event type = %q, want %q", got, model.WorkOrderEventCreated)
			}
		})
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	sc := model.Scope{UserID: "user-1", TenantID: "tenant-1"}

	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "open to assigned", from: model.WorkOrderStatusOpen, to: model.WorkOrderStatusAssigned},
		{name: "assigned to in progress", from: model.WorkOrderStatusAssigned, to: model.WorkOrderStatusInProgress},
		{name: "in progress to completed", from: model.WorkOrderStatusInProgress, to: model.WorkOrderStatusCompleted},
		{name: "open straight to completed", from: model.WorkOrderStatusOpen, to: model.WorkOrderStatusCompleted, wantErr: workorder.ErrInvalidTransition},
		{name: "completed is terminal", from: model.WorkOrderStatusCompleted, to: model.WorkOrderStatusOpen, wantErr: workorder.ErrInvalidTransition},
		{name: "cancelled is terminal", from: model.WorkOrderStatusCancelled, to: model.WorkOrderStatusOpen, wantErr: workorder.ErrInvalidTransition},
		{name: "unknown status", from: model.WorkOrderStatusOpen, to: "SHIPPED", wantErr: workorder.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{workOrders: map[string]model.WorkOrder{
				"wo-1": {ID: "wo-1", TenantID: sc.TenantID, Status: tt.from},
			}}
			producer := &fakeProducer{}
			uc := newTestUseCase(repo, producer)

			wo, err := uc.UpdateStatus(context.Background(), sc, workorder.UpdateStatusInput{ID: "wo-1", Status: tt.to})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus() error = %v", err)
			}
			if wo.Status != tt.to {
				t.Errorf("UpdateStatus() status = %q, want %q", wo.Status, tt.to)
			}
			if len(producer.published) != 1 || producer.published[0].EventType != model.WorkOrderEventStatusChanged {
				t.Errorf("UpdateStatus() events = %+v, want one status_changed", producer.published)
			}
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	sc := model.Scope{UserID: "user-1", TenantID: "tenant-1"}
	repo := &fakeRepository{workOrders: map[string]model.WorkOrder{}}
	uc := newTestUseCase(repo, &fakeProducer{})

	_, err := uc.UpdateStatus(context.Background(), sc, workorder.UpdateStatusInput{ID: "missing", Status: model.WorkOrderStatusAssigned})
	if !errors.Is(err, workorder.ErrWorkOrderNotFound) {
		t.Fatalf("UpdateStatus() error = %v, want %v", err, workorder.ErrWorkOrderNotFound)
	}
}

func TestAssign(t *testing.T) {
	sc := model.Scope{UserID: "user-1", TenantID: "tenant-1"}

	tests := []struct {
		name         string
		status       string
		technicianID string
		wantErr      error
	}{
		{name: "assign open order", status: model.WorkOrderStatusOpen, technicianID: "tech-1"},
		{name: "reassign assigned order", status: model.WorkOrderStatusAssigned, technicianID: "tech-2"},
		{name: "missing technician", status: model.WorkOrderStatusOpen, wantErr: workorder.ErrTechnicianMissing},
		{name: "in progress cannot be reassigned", status: model.WorkOrderStatusInProgress, technicianID: "tech-1", wantErr: workorder.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{workOrders: map[string]model.WorkOrder{
				"wo-1": {ID: "wo-1", TenantID: sc.TenantID, Status: tt.status},
			}}
			producer := &fakeProducer{}
			uc := newTestUseCase(repo, producer)

			wo, err := uc.Assign(context.Background(), sc, workorder.AssignInput{ID: "wo-1", TechnicianID: tt.technicianID})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Assign() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Assign() error = %v", err)
			}
			if wo.TechnicianID != tt.technicianID {
				t.Errorf("Assign() technician = %q, want %q", wo.TechnicianID, tt.technicianID)
			}
			if len(producer.published) != 1 || producer.published[0].EventType != model.WorkOrderEventAssigned {
				t.Errorf("Assign() events = %+v, want one assigned", producer.published)
			}
		})
	}
}

func TestCreate_PublishFailureDoesNotFailRequest(t *testing.T) {
	sc := model.Scope{UserID: "user-1", TenantID: "tenant-1"}
	repo := &fakeRepository{customerExists: true}
	producer := &fakeProducer{err: errors.New("broker down")}
	uc := newTestUseCase(repo, producer)

	if _, err := uc.Create(context.Background(), sc, workorder.CreateInput{CustomerID: "cust-1", Title: "Fix boiler"}); err != nil {
		t.Fatalf("Create() error = %v, want nil when publish fails", err)
	}
}
