package postgre

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder/repository"
	"fieldservice-srv/pkg/log"
	"fieldservice-srv/pkg/query"
)

var testScope = model.Scope{
	UserID:   "user-1",
	TenantID: "tenant-1",
}

func newTestRepository(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.Init(log.ZapConfig{Level: "error"})), mock
}

func workOrderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "customer_id", "technician_id", "title", "description",
		"status", "priority", "scheduled_at", "completed_at", "created_at", "updated_at",
	})
}

func TestListWorkOrders_Defaults(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM fieldservice.work_orders work_orders WHERE work_orders.tenant_id = $1`,
	)).WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT work_orders.id, work_orders.tenant_id, customer_id, technician_id, title, description, status, priority, scheduled_at, completed_at, work_orders.created_at, work_orders.updated_at, customers.name AS customer_name`+
			` FROM fieldservice.work_orders work_orders LEFT JOIN fieldservice.customers customers ON customers.id = work_orders.customer_id`+
			` WHERE work_orders.tenant_id = $1 ORDER BY work_orders.created_at DESC LIMIT $2 OFFSET $3`,
	)).WithArgs("tenant-1", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "customer_id", "technician_id", "title", "description",
			"status", "priority", "scheduled_at", "completed_at", "created_at", "updated_at", "customer_name",
		}).
			AddRow("wo-1", "tenant-1", "cus-1", nil, "Fix boiler", nil, "OPEN", 3, nil, nil, now, now, "Acme Corp").
			AddRow("wo-2", "tenant-1", "cus-2", "tech-9", "Install meter", "basement", "ASSIGNED", 2, now, nil, now, now, "Globex"))

	page, err := repo.ListWorkOrders(context.Background(), testScope, repository.ListWorkOrdersOptions{
		Params: url.Values{},
		Path:   "/api/v1/work-orders",
	})
	if err != nil {
		t.Fatalf("ListWorkOrders: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(page.Items))
	}
	if page.Items[0].CustomerName != "Acme Corp" {
		t.Errorf("customer name = %q", page.Items[0].CustomerName)
	}
	if page.Items[1].TechnicianID != "tech-9" {
		t.Errorf("technician = %q", page.Items[1].TechnicianID)
	}
	if page.Pagination.Total != 2 || page.Pagination.CurrentPage != 1 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
	if page.Path != "/api/v1/work-orders" {
		t.Errorf("path = %q", page.Path)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListWorkOrders_FilteredAndSorted(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	params := url.Values{}
	params.Set("status", "OPEN;ASSIGNED")
	params.Set("priority", ">=3")
	params.Set("sort", "-customer_name")

	// Counting skips the customers join; filters only touch work_orders.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM fieldservice.work_orders work_orders`+
			` WHERE work_orders.tenant_id = $1 AND priority >= $2 AND status IN ($3, $4)`,
	)).WithArgs("tenant-1", "3", "OPEN", "ASSIGNED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT work_orders.id, work_orders.tenant_id, customer_id, technician_id, title, description, status, priority, scheduled_at, completed_at, work_orders.created_at, work_orders.updated_at, customers.name AS customer_name`+
			` FROM fieldservice.work_orders work_orders LEFT JOIN fieldservice.customers customers ON customers.id = work_orders.customer_id`+
			` WHERE work_orders.tenant_id = $1 AND priority >= $2 AND status IN ($3, $4)`+
			` ORDER BY customers.name DESC LIMIT $5 OFFSET $6`,
	)).WithArgs("tenant-1", "3", "OPEN", "ASSIGNED", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "customer_id", "technician_id", "title", "description",
			"status", "priority", "scheduled_at", "completed_at", "created_at", "updated_at", "customer_name",
		}).AddRow("wo-3", "tenant-1", "cus-3", nil, "Replace valve", nil, "OPEN", 4, nil, nil, now, now, "Initech"))

	page, err := repo.ListWorkOrders(context.Background(), testScope, repository.ListWorkOrdersOptions{
		Params: params,
		Path:   "/api/v1/work-orders",
	})
	if err != nil {
		t.Fatalf("ListWorkOrders: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "wo-3" {
		t.Fatalf("items = %+v", page.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListWorkOrders_UnauthorizedFilterDropped(t *testing.T) {
	repo, mock := newTestRepository(t)

	params := url.Values{}
	params.Set("tenant_id", "tenant-2") // not searchable, must never reach SQL
	params.Set("status", "OPEN")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM fieldservice.work_orders work_orders`+
			` WHERE work_orders.tenant_id = $1 AND status = $2`,
	)).WithArgs("tenant-1", "OPEN").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	page, err := repo.ListWorkOrders(context.Background(), testScope, repository.ListWorkOrdersOptions{
		Params: params,
	})
	if err != nil {
		t.Fatalf("ListWorkOrders: %v", err)
	}
	if len(page.Items) != 0 || page.Pagination.Total != 0 {
		t.Fatalf("page = %+v", page)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestGetWorkOrderByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					`SELECT id, tenant_id, customer_id, technician_id, title, description, status, priority, scheduled_at, completed_at, created_at, updated_at`+
						` FROM fieldservice.work_orders WHERE id = $1 AND tenant_id = $2`,
				)).WithArgs("wo-1", "tenant-1").
					WillReturnRows(workOrderRows().AddRow(
						"wo-1", "tenant-1", "cus-1", "tech-1", "Fix boiler", "urgent",
						"ASSIGNED", 4, now, nil, now, now,
					))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, tenant_id`)).
					WithArgs("wo-1", "tenant-1").
					WillReturnRows(workOrderRows())
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setup(mock)

			wo, err := repo.GetWorkOrderByID(context.Background(), testScope, "wo-1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetWorkOrderByID: %v", err)
			}
			if wo.ID != "wo-1" || wo.TechnicianID != "tech-1" || wo.ScheduledAt == nil {
				t.Errorf("work order = %+v", wo)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("expectations: %v", err)
			}
		})
	}
}

func TestCreateWorkOrder(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO fieldservice.work_orders`,
	)).WithArgs(
		sqlmock.AnyArg(), "tenant-1", "cus-1", nil,
		"Fix boiler", "leaking tank", "OPEN", 3,
		nil, sqlmock.AnyArg(), sqlmock.AnyArg(),
	).WillReturnRows(workOrderRows().AddRow(
		"wo-1", "tenant-1", "cus-1", nil, "Fix boiler", "leaking tank",
		"OPEN", 3, nil, nil, now, now,
	))

	wo, err := repo.CreateWorkOrder(context.Background(), testScope, repository.CreateWorkOrderOptions{
		CustomerID:  "cus-1",
		Title:       "Fix boiler",
		Description: "leaking tank",
		Priority:    3,
	})
	if err != nil {
		t.Fatalf("CreateWorkOrder: %v", err)
	}
	if wo.Status != model.WorkOrderStatusOpen {
		t.Errorf("status = %q, want OPEN", wo.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUpdateWorkOrderStatus_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE fieldservice.work_orders`)).
		WithArgs("COMPLETED", sqlmock.AnyArg(), "wo-404", "tenant-1").
		WillReturnRows(workOrderRows())

	_, err := repo.UpdateWorkOrderStatus(context.Background(), testScope, repository.UpdateWorkOrderStatusOptions{
		ID:     "wo-404",
		Status: "COMPLETED",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAssignWorkOrder(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE fieldservice.work_orders SET technician_id = $1, status = $2, updated_at = $3 WHERE id = $4 AND tenant_id = $5`,
	)).WithArgs("tech-7", "ASSIGNED", sqlmock.AnyArg(), "wo-1", "tenant-1").
		WillReturnRows(workOrderRows().AddRow(
			"wo-1", "tenant-1", "cus-1", "tech-7", "Fix boiler", nil,
			"ASSIGNED", 3, nil, nil, now, now,
		))

	wo, err := repo.AssignWorkOrder(context.Background(), testScope, repository.AssignWorkOrderOptions{
		ID:           "wo-1",
		TechnicianID: "tech-7",
	})
	if err != nil {
		t.Fatalf("AssignWorkOrder: %v", err)
	}
	if wo.TechnicianID != "tech-7" || wo.Status != model.WorkOrderStatusAssigned {
		t.Errorf("work order = %+v", wo)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestNewWorkOrderParser(t *testing.T) {
	p, err := newWorkOrderParser(url.Values{
		"status":   {"OPEN;ASSIGNED"},
		"priority": {">=3"},
		"secret":   {"x"},
	})
	if err != nil {
		t.Fatalf("newWorkOrderParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 2 {
		t.Fatalf("Conditions() = %+v, want 2 conditions", conds)
	}
	if conds[0].Column != "priority" || conds[0].Operator != query.OpGreaterOrEqual || conds[0].Value != "3" {
		t.Errorf("priority condition = %+v", conds[0])
	}
	if conds[1].Column != "status" || conds[1].Operator != query.OpIn {
		t.Errorf("status condition = %+v", conds[1])
	}
	if dropped := p.Dropped(); len(dropped) != 1 || dropped[0] != "secret" {
		t.Errorf("Dropped() = %v, want [secret]", dropped)
	}
}
