package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/query"
)

var customerSchema = query.Schema{
	Table:           "customers",
	PrimaryKey:      "id",
	CreatedAtColumn: "created_at",
	UpdatedAtColumn: "updated_at",
}

var customerListColumns = []string{
	"id", "tenant_id", "name", "email", "phone", "address", "created_at", "updated_at",
}

var customerSource = query.Source{
	Table: "fieldservice.customers",
}

func newCustomerParser(params url.Values) (*query.Parser, error) {
	return query.NewParser(params, customerSchema, query.Options{
		Searchable: []string{
			"id", "name", "email", "phone", "address", "created_at", "updated_at",
		},
		Sortable: []string{
			"id", "name", "email", "created_at", "updated_at",
		},
	})
}

func scanCustomerRow(rows *sql.Rows) (model.Customer, error) {
	cols, err := rows.Columns()
	if err != nil {
		return model.Customer{}, err
	}

	var (
		c       model.Customer
		phone   sql.NullString
		address sql.NullString
	)

	dest := make([]any, 0, len(cols))
	for _, col := range cols {
		switch col {
		case "id":
			dest = append(dest, &c.ID)
		case "tenant_id":
			dest = append(dest, &c.TenantID)
		case "name":
			dest = append(dest, &c.Name)
		case "email":
			dest = append(dest, &c.Email)
		case "phone":
			dest = append(dest, &phone)
		case "address":
			dest = append(dest, &address)
		case "created_at":
			dest = append(dest, &c.CreatedAt)
		case "updated_at":
			dest = append(dest, &c.UpdatedAt)
		default:
			var discard any
			dest = append(dest, &discard)
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return model.Customer{}, err
	}

	if phone.Valid {
		c.Phone = phone.String
	}
	if address.Valid {
		c.Address = address.String
	}
	return c, nil
}

func (r *implRepository) ListCustomers(ctx context.Context, sc model.Scope, opt repository.ListCustomersOptions) (query.Page[model.Customer], error) {
	p, err := newCustomerParser(opt.Params)
	if err != nil {
		return query.Page[model.Customer]{}, fmt.Errorf("ListCustomers: %w", err)
	}

	page, err := query.Paginate(ctx, r.db, customerSource, p, query.PaginateOptions{
		BaseConditions: []query.Condition{
			{Column: "tenant_id", Operator: query.OpEqual, Value: sc.TenantID},
		},
		DefaultColumns: customerListColumns,
		DefaultOrder: []query.Order{
			{Column: "name", Direction: query.Asc},
		},
		DefaultLimit: paginator.DefaultLimit,
		MaxLimit:     paginator.MaxLimit,
		Path:         opt.Path,
	}, scanCustomerRow)
	if err != nil {
		return query.Page[model.Customer]{}, fmt.Errorf("ListCustomers: %w", err)
	}

	if dropped := p.Dropped(); len(dropped) > 0 {
		r.l.Warnf(ctx, "customer.repository.postgre.ListCustomers: dropped query fields: %v", dropped)
	}
	return page, nil
}

func (r *implRepository) GetCustomerByID(ctx context.Context, sc model.Scope, id string) (model.Customer, error) {
	query := `
		SELECT id, tenant_id, name, email, phone, address, created_at, updated_at
		FROM fieldservice.customers
		WHERE id = $1 AND tenant_id = $2
	`

	var (
		c       model.Customer
		phone   sql.NullString
		address sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id, sc.TenantID).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Email, &phone, &address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, repository.ErrNotFound
		}
		return model.Customer{}, fmt.Errorf("GetCustomerByID: %w", err)
	}

	if phone.Valid {
		c.Phone = phone.String
	}
	if address.Valid {
		c.Address = address.String
	}
	return c, nil
}
