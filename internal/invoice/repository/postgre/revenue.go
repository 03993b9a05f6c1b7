package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"fieldservice-srv/internal/invoice/repository"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/query"
)

// revenueSummarySQL aggregates per customer inside a derived table so the
// parsed filters and the caller's minimum-revenue bound can address the
// aggregate aliases as plain columns. $1 is the tenant.
const revenueSummarySQL = `
	FROM (
		SELECT i.customer_id AS customer_id,
		       c.name AS customer_name,
		       COUNT(i.id) AS invoice_count,
		       SUM(i.total) AS revenue,
		       SUM(CASE WHEN i.status = 'PAID' THEN i.total ELSE 0 END) AS paid_revenue
		FROM fieldservice.invoices i
		JOIN fieldservice.customers c ON c.id = i.customer_id
		WHERE i.tenant_id = $1 AND i.status <> 'VOID'
		GROUP BY i.customer_id, c.name
	) revenue_summary
`

var revenueSchema = query.Schema{
	Table:      "revenue_summary",
	PrimaryKey: "customer_id",
}

var revenueColumns = []string{
	"customer_id", "customer_name", "invoice_count", "revenue", "paid_revenue",
}

func newRevenueParser(params url.Values) (*query.Parser, error) {
	return query.NewParser(params, revenueSchema, query.Options{
		Searchable: revenueColumns,
		Sortable:   revenueColumns,
	})
}

func scanCustomerRevenue(rows *sql.Rows) (model.CustomerRevenue, error) {
	cols, err := rows.Columns()
	if err != nil {
		return model.CustomerRevenue{}, err
	}

	var row model.CustomerRevenue
	dest := make([]any, 0, len(cols))
	for _, col := range cols {
		switch col {
		case "customer_id":
			dest = append(dest, &row.CustomerID)
		case "customer_name":
			dest = append(dest, &row.CustomerName)
		case "invoice_count":
			dest = append(dest, &row.InvoiceCount)
		case "revenue":
			dest = append(dest, &row.Revenue)
		case "paid_revenue":
			dest = append(dest, &row.PaidRevenue)
		default:
			var discard any
			dest = append(dest, &discard)
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return model.CustomerRevenue{}, err
	}
	return row, nil
}

func (r *implRepository) RevenueSummary(ctx context.Context, sc model.Scope, opt repository.RevenueSummaryOptions) (query.Page[model.CustomerRevenue], error) {
	p, err := newRevenueParser(opt.Params)
	if err != nil {
		return query.Page[model.CustomerRevenue]{}, fmt.Errorf("RevenueSummary: %w", err)
	}

	bindings := []any{sc.TenantID}
	where := ""
	if opt.MinRevenue > 0 {
		bindings = append(bindings, opt.MinRevenue)
		where = "revenue >= $2"
	}

	count := query.RawStatement{
		SQL:      revenueSummarySQL,
		Columns:  []string{"COUNT(*)"},
		Bindings: bindings,
		Where:    where,
	}
	data := query.RawStatement{
		SQL:      revenueSummarySQL,
		Columns:  revenueColumns,
		Bindings: bindings,
		Where:    where,
		Order: []query.Order{
			{Column: "revenue", Direction: query.Desc},
		},
	}

	rp, err := query.NewRawPaginator(count, data, query.RawOptions{
		DefaultLimit: paginator.DefaultLimit,
		MaxLimit:     paginator.MaxLimit,
		Path:         opt.Path,
	})
	if err != nil {
		return query.Page[model.CustomerRevenue]{}, fmt.Errorf("RevenueSummary: %w", err)
	}

	page, err := query.ExecuteRaw(ctx, r.db, rp, p, scanCustomerRevenue)
	if err != nil {
		return query.Page[model.CustomerRevenue]{}, fmt.Errorf("RevenueSummary: %w", err)
	}

	if dropped := p.Dropped(); len(dropped) > 0 {
		r.l.Warnf(ctx, "invoice.repository.postgre.RevenueSummary: dropped query fields: %v", dropped)
	}
	return page, nil
}
