package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/workorder/repository"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/query"
)

var workOrderSchema = query.Schema{
	Table:           "work_orders",
	PrimaryKey:      "work_orders.id",
	CreatedAtColumn: "work_orders.created_at",
	UpdatedAtColumn: "work_orders.updated_at",
}

// Ambiguous columns carry the table qualifier because the listing joins
// customers for the display name.
var workOrderListColumns = []string{
	"work_orders.id",
	"work_orders.tenant_id",
	"customer_id",
	"technician_id",
	"title",
	"description",
	"status",
	"priority",
	"scheduled_at",
	"completed_at",
	"work_orders.created_at",
	"work_orders.updated_at",
	"customers.name AS customer_name",
}

var workOrderSource = query.Source{
	Table: "fieldservice.work_orders work_orders",
	Joins: []string{
		"LEFT JOIN fieldservice.customers customers ON customers.id = work_orders.customer_id",
	},
}

// Counting never needs the customers join; every filter targets work_orders.
var workOrderCountSource = query.Source{
	Table: "fieldservice.work_orders work_orders",
}

func newWorkOrderParser(params url.Values) (*query.Parser, error) {
	return query.NewParser(params, workOrderSchema, query.Options{
		Searchable: []string{
			"work_orders.id",
			"title",
			"status",
			"priority",
			"customer_id",
			"technician_id",
			"scheduled_at",
			"completed_at",
			"work_orders.created_at",
			"work_orders.updated_at",
		},
		Sortable: []string{
			"work_orders.id",
			"status",
			"priority",
			"scheduled_at",
			"completed_at",
			"work_orders.created_at",
			"work_orders.updated_at",
			"customer_name",
		},
		SortableMap: map[string]string{
			"customer_name": "customers.name",
		},
		Formatters: map[string]query.Formatter{
			"status": query.MultiValue,
		},
		RawColumns: true,
	})
}

// scanWorkOrderRow scans whatever projection the request selected. Columns
// outside the model are discarded so narrowed fields= projections still scan.
func scanWorkOrderRow(rows *sql.Rows) (model.WorkOrder, error) {
	cols, err := rows.Columns()
	if err != nil {
		return model.WorkOrder{}, err
	}

	var (
		wo           model.WorkOrder
		technicianID sql.NullString
		description  sql.NullString
		customerName sql.NullString
		scheduledAt  sql.NullTime
		completedAt  sql.NullTime
	)

	dest := make([]any, 0, len(cols))
	for _, col := range cols {
		switch col {
		case "id":
			dest = append(dest, &wo.ID)
		case "tenant_id":
			dest = append(dest, &wo.TenantID)
		case "customer_id":
			dest = append(dest, &wo.CustomerID)
		case "technician_id":
			dest = append(dest, &technicianID)
		case "title":
			dest = append(dest, &wo.Title)
		case "description":
			dest = append(dest, &description)
		case "status":
			dest = append(dest, &wo.Status)
		case "priority":
			dest = append(dest, &wo.Priority)
		case "scheduled_at":
			dest = append(dest, &scheduledAt)
		case "completed_at":
			dest = append(dest, &completedAt)
		case "created_at":
			dest = append(dest, &wo.CreatedAt)
		case "updated_at":
			dest = append(dest, &wo.UpdatedAt)
		case "customer_name":
			dest = append(dest, &customerName)
		default:
			var discard any
			dest = append(dest, &discard)
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return model.WorkOrder{}, err
	}

	if technicianID.Valid {
		wo.TechnicianID = technicianID.String
	}
	if description.Valid {
		wo.Description = description.String
	}
	if customerName.Valid {
		wo.CustomerName = customerName.String
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

func (r *implRepository) ListWorkOrders(ctx context.Context, sc model.Scope, opt repository.ListWorkOrdersOptions) (query.Page[model.WorkOrder], error) {
	p, err := newWorkOrderParser(opt.Params)
	if err != nil {
		return query.Page[model.WorkOrder]{}, fmt.Errorf("ListWorkOrders: %w", err)
	}

	page, err := query.Paginate(ctx, r.db, workOrderSource, p, query.PaginateOptions{
		BaseConditions: []query.Condition{
			{Column: "work_orders.tenant_id", Operator: query.OpEqual, Value: sc.TenantID},
		},
		DefaultColumns: workOrderListColumns,
		DefaultOrder: []query.Order{
			{Column: "work_orders.created_at", Direction: query.Desc},
		},
		DefaultLimit: paginator.DefaultLimit,
		MaxLimit:     paginator.MaxLimit,
		CountSource:  &workOrderCountSource,
		Path:         opt.Path,
	}, scanWorkOrderRow)
	if err != nil {
		return query.Page[model.WorkOrder]{}, fmt.Errorf("ListWorkOrders: %w", err)
	}

	if dropped := p.Dropped(); len(dropped) > 0 {
		r.l.Warnf(ctx, "workorder.repository.postgre.ListWorkOrders: dropped query fields: %v", dropped)
	}
	return page, nil
}
