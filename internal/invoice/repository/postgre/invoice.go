package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"fieldservice-srv/internal/invoice/repository"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/query"
)

var invoiceSchema = query.Schema{
	Table:           "invoices",
	PrimaryKey:      "id",
	CreatedAtColumn: "created_at",
	UpdatedAtColumn: "updated_at",
}

var invoiceListColumns = []string{
	"id", "tenant_id", "customer_id", "work_order_id", "number",
	"status", "total", "currency", "issued_date", "due_date", "paid_at",
	"created_at", "updated_at",
}

var invoiceSource = query.Source{
	Table: "fieldservice.invoices",
}

func newInvoiceParser(params url.Values) (*query.Parser, error) {
	return query.NewParser(params, invoiceSchema, query.Options{
		Searchable: []string{
			"id", "customer_id", "work_order_id", "number",
			"status", "total", "currency", "issued_date", "due_date",
			"created_at", "updated_at",
		},
		Sortable: []string{
			"id", "number", "status", "total",
			"issued_date", "due_date", "created_at", "updated_at",
		},
		Formatters: map[string]query.Formatter{
			"status": query.MultiValue,
		},
	})
}

func scanInvoiceRow(rows *sql.Rows) (model.Invoice, error) {
	cols, err := rows.Columns()
	if err != nil {
		return model.Invoice{}, err
	}

	var (
		inv         model.Invoice
		workOrderID sql.NullString
		dueDate     sql.NullTime
		paidAt      sql.NullTime
	)

	dest := make([]any, 0, len(cols))
	for _, col := range cols {
		switch col {
		case "id":
			dest = append(dest, &inv.ID)
		case "tenant_id":
			dest = append(dest, &inv.TenantID)
		case "customer_id":
			dest = append(dest, &inv.CustomerID)
		case "work_order_id":
			dest = append(dest, &workOrderID)
		case "number":
			dest = append(dest, &inv.Number)
		case "status":
			dest = append(dest, &inv.Status)
		case "total":
			dest = append(dest, &inv.Total)
		case "currency":
			dest = append(dest, &inv.Currency)
		case "issued_date":
			dest = append(dest, &inv.IssuedDate)
		case "due_date":
			dest = append(dest, &dueDate)
		case "paid_at":
			dest = append(dest, &paidAt)
		case "created_at":
			dest = append(dest, &inv.CreatedAt)
		case "updated_at":
			dest = append(dest, &inv.UpdatedAt)
		default:
			var discard any
			dest = append(dest, &discard)
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return model.Invoice{}, err
	}

	if workOrderID.Valid {
		inv.WorkOrderID = workOrderID.String
	}
	if dueDate.Valid {
		t := dueDate.Time
		inv.DueDate = &t
	}
	if paidAt.Valid {
		t := paidAt.Time
		inv.PaidAt = &t
	}
	return inv, nil
}

func (r *implRepository) ListInvoices(ctx context.Context, sc model.Scope, opt repository.ListInvoicesOptions) (query.Page[model.Invoice], error) {
	p, err := newInvoiceParser(opt.Params)
	if err != nil {
		return query.Page[model.Invoice]{}, fmt.Errorf("ListInvoices: %w", err)
	}

	page, err := query.Paginate(ctx, r.db, invoiceSource, p, query.PaginateOptions{
		BaseConditions: []query.Condition{
			{Column: "tenant_id", Operator: query.OpEqual, Value: sc.TenantID},
		},
		DefaultColumns: invoiceListColumns,
		DefaultOrder: []query.Order{
			{Column: "issued_date", Direction: query.Desc},
		},
		DefaultLimit: paginator.DefaultLimit,
		MaxLimit:     paginator.MaxLimit,
		Path:         opt.Path,
	}, scanInvoiceRow)
	if err != nil {
		return query.Page[model.Invoice]{}, fmt.Errorf("ListInvoices: %w", err)
	}

	if dropped := p.Dropped(); len(dropped) > 0 {
		r.l.Warnf(ctx, "invoice.repository.postgre.ListInvoices: dropped query fields: %v", dropped)
	}
	return page, nil
}

const invoiceReturning = `id, tenant_id, customer_id, work_order_id, number, status, total, currency, issued_date, due_date, paid_at, created_at, updated_at`

func scanInvoice(row *sql.Row) (model.Invoice, error) {
	var (
		inv         model.Invoice
		workOrderID sql.NullString
		dueDate     sql.NullTime
		paidAt      sql.NullTime
	)

	err := row.Scan(
		&inv.ID, &inv.TenantID, &inv.CustomerID, &workOrderID,
		&inv.Number, &inv.Status, &inv.Total, &inv.Currency,
		&inv.IssuedDate, &dueDate, &paidAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return model.Invoice{}, err
	}

	if workOrderID.Valid {
		inv.WorkOrderID = workOrderID.String
	}
	if dueDate.Valid {
		t := dueDate.Time
		inv.DueDate = &t
	}
	if paidAt.Valid {
		t := paidAt.Time
		inv.PaidAt = &t
	}
	return inv, nil
}

func (r *implRepository) GetInvoiceByID(ctx context.Context, sc model.Scope, id string) (model.Invoice, error) {
	query := `
		SELECT ` + invoiceReturning + `
		FROM fieldservice.invoices
		WHERE id = $1 AND tenant_id = $2
	`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, id, sc.TenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Invoice{}, repository.ErrNotFound
		}
		return model.Invoice{}, fmt.Errorf("GetInvoiceByID: %w", err)
	}
	return inv, nil
}

func (r *implRepository) MarkInvoicePaid(ctx context.Context, sc model.Scope, id string) (model.Invoice, error) {
	now := time.Now()

	query := `
		UPDATE fieldservice.invoices
		SET status = $1, paid_at = $2, updated_at = $2
		WHERE id = $3 AND tenant_id = $4
		RETURNING ` + invoiceReturning + `
	`

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, model.InvoiceStatusPaid, now, id, sc.TenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Invoice{}, repository.ErrNotFound
		}
		return model.Invoice{}, fmt.Errorf("MarkInvoicePaid: %w", err)
	}
	return inv, nil
}
