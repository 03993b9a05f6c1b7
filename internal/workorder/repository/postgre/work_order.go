package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder/repository"

	"github.com/google/uuid"
)

const workOrderReturning = `id, tenant_id, customer_id, technician_id, title, description, status, priority, scheduled_at, completed_at, created_at, updated_at`

func scanWorkOrder(row *sql.Row) (model.WorkOrder, error) {
	var (
		wo           model.WorkOrder
		technicianID sql.NullString
		description  sql.NullString
		scheduledAt  sql.NullTime
		completedAt  sql.NullTime
	)

	err := row.Scan(
		&wo.ID, &wo.TenantID, &wo.CustomerID, &technicianID,
		&wo.Title, &description, &wo.Status, &wo.Priority,
		&scheduledAt, &completedAt, &wo.CreatedAt, &wo.UpdatedAt,
	)
	if err != nil {
		return model.WorkOrder{}, err
	}

	if technicianID.Valid {
		wo.TechnicianID = technicianID.String
	}
	if description.Valid {
		wo.Description = description.String
	}
	if scheduledAt.Valid {
		t := scheduledAt.Time
		wo.ScheduledAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		wo.CompletedAt = &t
	}
	return wo, nil
}

func (r *implRepository) GetWorkOrderByID(ctx context.Context, sc model.Scope, id string) (model.WorkOrder, error) {
	query := `
		SELECT ` + workOrderReturning + `
		FROM fieldservice.work_orders
		WHERE id = $1 AND tenant_id = $2
	`

	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query, id, sc.TenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WorkOrder{}, repository.ErrNotFound
		}
		return model.WorkOrder{}, fmt.Errorf("GetWorkOrderByID: %w", err)
	}
	return wo, nil
}

func (r *implRepository) CreateWorkOrder(ctx context.Context, sc model.Scope, opt repository.CreateWorkOrderOptions) (model.WorkOrder, error) {
	id := uuid.New().String()
	now := time.Now()

	status := model.WorkOrderStatusOpen
	var technicianID any
	if opt.TechnicianID != "" {
		technicianID = opt.TechnicianID
		status = model.WorkOrderStatusAssigned
	}

	var scheduledAt any
	if opt.ScheduledAt != nil {
		scheduledAt = *opt.ScheduledAt
	}

	query := `
		INSERT INTO fieldservice.work_orders (id, tenant_id, customer_id, technician_id, title, description, status, priority, scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + workOrderReturning + `
	`

	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query,
		id, sc.TenantID, opt.CustomerID, technicianID,
		opt.Title, opt.Description, status, opt.Priority,
		scheduledAt, now, now,
	))
	if err != nil {
		return model.WorkOrder{}, fmt.Errorf("CreateWorkOrder: %w", err)
	}
	return wo, nil
}

func (r *implRepository) UpdateWorkOrderStatus(ctx context.Context, sc model.Scope, opt repository.UpdateWorkOrderStatusOptions) (model.WorkOrder, error) {
	now := time.Now()

	// completed_at is set exactly once, when the order reaches COMPLETED.
	query := `
		UPDATE fieldservice.work_orders
		SET status = $1,
		    completed_at = CASE WHEN $1 = 'COMPLETED' THEN $2 ELSE completed_at END,
		    updated_at = $2
		WHERE id = $3 AND tenant_id = $4
		RETURNING ` + workOrderReturning + `
	`

	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query, opt.Status, now, opt.ID, sc.TenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WorkOrder{}, repository.ErrNotFound
		}
		return model.WorkOrder{}, fmt.Errorf("UpdateWorkOrderStatus: %w", err)
	}
	return wo, nil
}

func (r *implRepository) AssignWorkOrder(ctx context.Context, sc model.Scope, opt repository.AssignWorkOrderOptions) (model.WorkOrder, error) {
	now := time.Now()

	query := `
		UPDATE fieldservice.work_orders
		SET technician_id = $1, status = $2, updated_at = $3
		WHERE id = $4 AND tenant_id = $5
		RETURNING ` + workOrderReturning + `
	`

	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query,
		opt.TechnicianID, model.WorkOrderStatusAssigned, now, opt.ID, sc.TenantID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WorkOrder{}, repository.ErrNotFound
		}
		return model.WorkOrder{}, fmt.Errorf("AssignWorkOrder: %w", err)
	}
	return wo, nil
}

func (r *implRepository) CustomerExists(ctx context.Context, sc model.Scope, customerID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fieldservice.customers WHERE id = $1 AND tenant_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, customerID, sc.TenantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("CustomerExists: %w", err)
	}
	return exists, nil
}
