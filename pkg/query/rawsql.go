package query

import (
	"context"
	"fmt"
	"strings"

	"fieldservice-srv/pkg/paginator"
)

// RawStatement describes one hand-written SQL template. SQL starts at the
// FROM clause and carries neither a SELECT list nor a WHERE clause; both are
// supplied here and assembled at execution time. Bindings are the bound
// parameters the template already references, numbered $1..$n; parsed filter
// values are bound after them.
type RawStatement struct {
	SQL      string
	Columns  []string
	Bindings []any
	Where    string
	Order    []Order
}

// RawOptions configures a raw-SQL pagination run.
type RawOptions struct {
	PersonNameTable string
	PersonNameKey   string
	DefaultLimit    int
	MaxLimit        int
	Path            string
}

// RawPaginator pages over hand-written SQL, for aggregate reports the
// builder path cannot express. Count and data statements are validated once
// at construction.
type RawPaginator struct {
	count RawStatement
	data  RawStatement
	opts  RawOptions
}

// NewRawPaginator validates both statements before anything executes. A
// missing SQL template or an empty column list is a programming error in the
// calling repository and fails immediately.
func NewRawPaginator(count, data RawStatement, opts RawOptions) (*RawPaginator, error) {
	for _, stmt := range []RawStatement{count, data} {
		if strings.TrimSpace(stmt.SQL) == "" {
			return nil, ErrMissingSQL
		}
		if len(stmt.Columns) == 0 {
			return nil, ErrMissingColumns
		}
	}

	return &RawPaginator{count: count, data: data, opts: opts}, nil
}

// ExecuteRaw runs the count statement, and the data statement only when the
// requested page overlaps the counted rows. The caller's where fragment and
// parsed filter conditions always combine with AND. Offset and limit are
// rendered as literal integers; every user-supplied value stays a bound
// parameter.
func ExecuteRaw[T any](
	ctx context.Context,
	db SQLExecutor,
	rp *RawPaginator,
	p *Parser,
	scan ScanFunc[T],
) (Page[T], error) {
	maxLimit, defLimit := PaginateOptions{DefaultLimit: rp.opts.DefaultLimit, MaxLimit: rp.opts.MaxLimit}.limits()

	page := p.CurrentPage()
	limit := p.Limit(maxLimit, defLimit)
	conds := p.Conditions(nil, rp.opts.PersonNameTable, rp.opts.PersonNameKey)

	countSQL, countArgs := buildRawSQL(rp.count, rp.count.Columns[0]+" AS aggregate", conds, nil, -1, -1)

	var total int64
	if err := db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return Page[T]{}, err
	}

	result := Page[T]{
		Items: []T{},
		Path:  rp.opts.Path,
		Query: p.RawQuery(),
	}

	offset := (page - 1) * limit
	if total == 0 || int64(offset) >= total {
		result.Pagination = paginator.NewPaginator(total, 0, int64(limit), page)
		return result, nil
	}

	cols := p.Columns(rp.data.Columns)
	order := p.Order(rp.data.Order)

	dataSQL, dataArgs := buildRawSQL(rp.data, strings.Join(cols, ", "), conds, order, limit, offset)

	rows, err := db.QueryContext(ctx, dataSQL, dataArgs...)
	if err != nil {
		return Page[T]{}, err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return Page[T]{}, err
		}
		result.Items = append(result.Items, item)
	}
	if err := rows.Err(); err != nil {
		return Page[T]{}, err
	}

	result.Pagination = paginator.NewPaginator(total, int64(len(result.Items)), int64(limit), page)
	return result, nil
}

func buildRawSQL(stmt RawStatement, selectList string, conds []Condition, order []Order, limit, offset int) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(selectList)
	sb.WriteString(" ")
	sb.WriteString(strings.TrimSpace(stmt.SQL))

	args := append([]any{}, stmt.Bindings...)
	clauses, args, _ := renderConditions(conds, args, len(stmt.Bindings)+1)
	if stmt.Where != "" {
		clauses = append([]string{"(" + stmt.Where + ")"}, clauses...)
	}
	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}

	if len(order) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(renderOrder(order))
	}
	if limit >= 0 {
		fmt.Fprintf(&sb, " LIMIT %d OFFSET %d", limit, offset)
	}

	return sb.String(), args
}
