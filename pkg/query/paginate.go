package query

import (
	"context"
	"database/sql"
	"net/url"

	"fieldservice-srv/pkg/paginator"
)

// SQLExecutor abstracts *sql.DB and *sql.Tx for query execution.
type SQLExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ScanFunc maps one result row to a value.
type ScanFunc[T any] func(rows *sql.Rows) (T, error)

// Page is one page of results plus the metadata needed to render links.
type Page[T any] struct {
	Items      []T
	Pagination paginator.Paginator
	Path       string
	Query      url.Values
}

// PaginateOptions configures one paginated listing.
type PaginateOptions struct {
	// BaseConditions are always applied, before any parsed filter. Callers
	// put tenant scoping here.
	BaseConditions []Condition

	// PersonNameTable and PersonNameKey feed the computed person-name
	// expression when the input filters or sorts on it.
	PersonNameTable string
	PersonNameKey   string

	// DefaultColumns is the projection used when the input has no fields
	// parameter. Empty means "*" is never implied; callers list columns.
	DefaultColumns []string

	// DefaultOrder applies only when the input carries no sort parameter.
	DefaultOrder []Order

	// DefaultLimit and MaxLimit bound the page size. Zero values fall back
	// to the package defaults.
	DefaultLimit int
	MaxLimit     int

	// CountSource, when set, replaces the data source for the count query.
	// Needed when the data source joins multiply rows.
	CountSource *Source

	// Path is echoed into the page for link construction.
	Path string
}

func (o PaginateOptions) limits() (max, def int) {
	max, def = o.MaxLimit, o.DefaultLimit
	if max <= 0 {
		max = paginator.MaxLimit
	}
	if def <= 0 {
		def = paginator.DefaultLimit
	}
	return max, def
}

// Paginate runs a counted, paginated listing over src. It issues at most one
// count query and one data query; the data query is skipped when the count
// is zero or the requested page starts past the last row.
func Paginate[T any](
	ctx context.Context,
	db SQLExecutor,
	src Source,
	p *Parser,
	opts PaginateOptions,
	scan ScanFunc[T],
) (Page[T], error) {
	maxLimit, defLimit := opts.limits()

	page := p.CurrentPage()
	limit := defLimit
	conds := opts.BaseConditions
	cols := dedupe(opts.DefaultColumns)
	order := opts.DefaultOrder

	if !p.IsSimple() {
		limit = p.Limit(maxLimit, defLimit)
		conds = p.Conditions(opts.BaseConditions, opts.PersonNameTable, opts.PersonNameKey)
		cols = p.Columns(opts.DefaultColumns)
		order = p.Order(opts.DefaultOrder)
	}

	countSrc := src
	if opts.CountSource != nil {
		countSrc = *opts.CountSource
	}

	countSQL, countArgs := buildCountSQL(countSrc, conds)

	var total int64
	if err := db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return Page[T]{}, err
	}

	result := Page[T]{
		Items: []T{},
		Path:  opts.Path,
		Query: p.RawQuery(),
	}

	offset := (page - 1) * limit
	if total == 0 || int64(offset) >= total {
		result.Pagination = paginator.NewPaginator(total, 0, int64(limit), page)
		return result, nil
	}

	selectSQL, selectArgs := buildSelectSQL(src, cols, conds, order, limit, offset)

	rows, err := db.QueryContext(ctx, selectSQL, selectArgs...)
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
