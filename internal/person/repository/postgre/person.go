package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/person/repository"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/query"

	"github.com/google/uuid"
)

var personSchema = query.Schema{
	Table:           "people",
	PrimaryKey:      "people.id",
	CreatedAtColumn: "people.created_at",
	UpdatedAtColumn: "people.updated_at",
}

var personListColumns = []string{
	"people.id",
	"people.tenant_id",
	"company_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"role",
	"people.created_at",
	"people.updated_at",
	"companies.name AS company_name",
}

var personSource = query.Source{
	Table: "fieldservice.people people",
	Joins: []string{
		"LEFT JOIN fieldservice.companies companies ON companies.id = people.company_id",
	},
}

func newPersonParser(params url.Values) (*query.Parser, error) {
	return query.NewParser(params, personSchema, query.Options{
		Searchable: []string{
			"people.id",
			"company_id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"role",
			"people.created_at",
			"people.updated_at",
			"companies.name",
			query.PersonNameColumn,
		},
		Sortable: []string{
			"people.id",
			"first_name",
			"last_name",
			"email",
			"role",
			"people.created_at",
			"people.updated_at",
			"company_name",
			query.PersonNameColumn,
		},
		SortableMap: map[string]string{
			"company_name":          "companies.name",
			query.PersonNameColumn: fmt.Sprintf("person_name(people.id) COLLATE %s", query.PersonNameCollation),
		},
		RawColumns: true,
	})
}

func scanPersonRow(rows *sql.Rows) (model.Person, error) {
	cols, err := rows.Columns()
	if err != nil {
		return model.Person{}, err
	}

	var (
		p           model.Person
		companyID   sql.NullString
		phone       sql.NullString
		companyName sql.NullString
	)

	dest := make([]any, 0, len(cols))
	for _, col := range cols {
		switch col {
		case "id":
			dest = append(dest, &p.ID)
		case "tenant_id":
			dest = append(dest, &p.TenantID)
		case "company_id":
			dest = append(dest, &companyID)
		case "first_name":
			dest = append(dest, &p.FirstName)
		case "last_name":
			dest = append(dest, &p.LastName)
		case "email":
			dest = append(dest, &p.Email)
		case "phone":
			dest = append(dest, &phone)
		case "role":
			dest = append(dest, &p.Role)
		case "created_at":
			dest = append(dest, &p.CreatedAt)
		case "updated_at":
			dest = append(dest, &p.UpdatedAt)
		case "company_name":
			dest = append(dest, &companyName)
		default:
			var discard any
			dest = append(dest, &discard)
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return model.Person{}, err
	}

	if companyID.Valid {
		p.CompanyID = companyID.String
	}
	if phone.Valid {
		p.Phone = phone.String
	}
	if companyName.Valid {
		p.CompanyName = companyName.String
	}
	return p, nil
}

func (r *implRepository) ListPeople(ctx context.Context, sc model.Scope, opt repository.ListPeopleOptions) (query.Page[model.Person], error) {
	p, err := newPersonParser(opt.Params)
	if err != nil {
		return query.Page[model.Person]{}, fmt.Errorf("ListPeople: %w", err)
	}

	page, err := query.Paginate(ctx, r.db, personSource, p, query.PaginateOptions{
		BaseConditions: []query.Condition{
			{Column: "people.tenant_id", Operator: query.OpEqual, Value: sc.TenantID},
		},
		PersonNameTable: "people",
		PersonNameKey:   "id",
		DefaultColumns:  personListColumns,
		DefaultOrder: []query.Order{
			{Column: "last_name", Direction: query.Asc},
			{Column: "first_name", Direction: query.Asc},
		},
		DefaultLimit: paginator.DefaultLimit,
		MaxLimit:     paginator.MaxLimit,
		Path:         opt.Path,
	}, scanPersonRow)
	if err != nil {
		return query.Page[model.Person]{}, fmt.Errorf("ListPeople: %w", err)
	}

	if dropped := p.Dropped(); len(dropped) > 0 {
		r.l.Warnf(ctx, "person.repository.postgre.ListPeople: dropped query fields: %v", dropped)
	}
	return page, nil
}

const personReturning = `id, tenant_id, company_id, first_name, last_name, email, phone, role, created_at, updated_at`

func scanPerson(row *sql.Row) (model.Person, error) {
	var (
		p         model.Person
		companyID sql.NullString
		phone     sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.TenantID, &companyID, &p.FirstName, &p.LastName,
		&p.Email, &phone, &p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Person{}, err
	}

	if companyID.Valid {
		p.CompanyID = companyID.String
	}
	if phone.Valid {
		p.Phone = phone.String
	}
	return p, nil
}

func (r *implRepository) GetPersonByID(ctx context.Context, sc model.Scope, id string) (model.Person, error) {
	query := `
		SELECT ` + personReturning + `
		FROM fieldservice.people
		WHERE id = $1 AND tenant_id = $2
	`

	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id, sc.TenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, repository.ErrNotFound
		}
		return model.Person{}, fmt.Errorf("GetPersonByID: %w", err)
	}
	return p, nil
}

func (r *implRepository) CreatePerson(ctx context.Context, sc model.Scope, opt repository.CreatePersonOptions) (model.Person, error) {
	id := uuid.New().String()
	now := time.Now()

	var companyID any
	if opt.CompanyID != "" {
		companyID = opt.CompanyID
	}

	query := `
		INSERT INTO fieldservice.people (id, tenant_id, company_id, first_name, last_name, email, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + personReturning + `
	`

	p, err := scanPerson(r.db.QueryRowContext(ctx, query,
		id, sc.TenantID, companyID, opt.FirstName, opt.LastName,
		opt.Email, opt.Phone, opt.Role, now, now,
	))
	if err != nil {
		return model.Person{}, fmt.Errorf("CreatePerson: %w", err)
	}
	return p, nil
}
