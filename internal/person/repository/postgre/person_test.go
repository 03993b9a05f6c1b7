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
	"fieldservice-srv/internal/person/repository"
	"fieldservice-srv/pkg/log"
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

const personSelectSQL = `SELECT people.id, people.tenant_id, company_id, first_name, last_name, email, phone, role, people.created_at, people.updated_at, companies.name AS company_name` +
	` FROM fieldservice.people people LEFT JOIN fieldservice.companies companies ON companies.id = people.company_id`

func personListRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "company_id", "first_name", "last_name", "email",
		"phone", "role", "created_at", "updated_at", "company_name",
	})
}

func TestListPeople_PersonNameFilter(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	params := url.Values{}
	params.Set("person_name", "%nguyen%")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM fieldservice.people people LEFT JOIN fieldservice.companies companies ON companies.id = people.company_id`+
			` WHERE people.tenant_id = $1 AND person_name(people.id) COLLATE "default" LIKE $2`,
	)).WithArgs("tenant-1", "%nguyen%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		personSelectSQL+
			` WHERE people.tenant_id = $1 AND person_name(people.id) COLLATE "default" LIKE $2`+
			` ORDER BY last_name ASC, first_name ASC LIMIT $3 OFFSET $4`,
	)).WithArgs("tenant-1", "%nguyen%", 20, 0).
		WillReturnRows(personListRows().AddRow(
			"per-1", "tenant-1", "com-1", "An", "Nguyen", "an@acme.test",
			nil, "technician", now, now, "Acme Corp",
		))

	page, err := repo.ListPeople(context.Background(), testScope, repository.ListPeopleOptions{
		Params: params,
		Path:   "/api/v1/people",
	})
	if err != nil {
		t.Fatalf("ListPeople: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].LastName != "Nguyen" {
		t.Fatalf("items = %+v", page.Items)
	}
	if page.Items[0].CompanyName != "Acme Corp" {
		t.Errorf("company name = %q", page.Items[0].CompanyName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListPeople_DottedCompanyFilterAndComputedSort(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	params := url.Values{}
	params.Set("companies/name", "%acme%")
	params.Set("sort", "person_name")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM fieldservice.people people LEFT JOIN fieldservice.companies companies ON companies.id = people.company_id`+
			` WHERE people.tenant_id = $1 AND companies.name LIKE $2`,
	)).WithArgs("tenant-1", "%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		personSelectSQL+
			` WHERE people.tenant_id = $1 AND companies.name LIKE $2`+
			` ORDER BY person_name(people.id) COLLATE "default" ASC LIMIT $3 OFFSET $4`,
	)).WithArgs("tenant-1", "%acme%", 20, 0).
		WillReturnRows(personListRows().AddRow(
			"per-2", "tenant-1", "com-1", "Binh", "Tran", "binh@acme.test",
			"+84900000000", "manager", now, now, "Acme Corp",
		))

	page, err := repo.ListPeople(context.Background(), testScope, repository.ListPeopleOptions{
		Params: params,
	})
	if err != nil {
		t.Fatalf("ListPeople: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Phone != "+84900000000" {
		t.Fatalf("items = %+v", page.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListPeople_FieldsProjection(t *testing.T) {
	repo, mock := newTestRepository(t)

	params := url.Values{}
	params.Set("fields", "first_name,last_name")

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM fieldservice.people people`,
	)).WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// The primary key is forced into every projection.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT first_name, last_name, people.id`+
			` FROM fieldservice.people people LEFT JOIN fieldservice.companies companies ON companies.id = people.company_id`+
			` WHERE people.tenant_id = $1 ORDER BY last_name ASC, first_name ASC LIMIT $2 OFFSET $3`,
	)).WithArgs("tenant-1", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"first_name", "last_name", "id"}).
			AddRow("An", "Nguyen", "per-1"))

	page, err := repo.ListPeople(context.Background(), testScope, repository.ListPeopleOptions{
		Params: params,
	})
	if err != nil {
		t.Fatalf("ListPeople: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("items = %+v", page.Items)
	}
	if got := page.Items[0]; got.ID != "per-1" || got.FirstName != "An" || got.Email != "" {
		t.Errorf("projected person = %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestGetPersonByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, tenant_id, company_id`)).
		WithArgs("per-404", "tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetPersonByID(context.Background(), testScope, "per-404")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreatePerson(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO fieldservice.people`)).
		WithArgs(
			sqlmock.AnyArg(), "tenant-1", "com-1", "An", "Nguyen",
			"an@acme.test", "", "technician", sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "tenant_id", "company_id", "first_name", "last_name",
			"email", "phone", "role", "created_at", "updated_at",
		}).AddRow("per-1", "tenant-1", "com-1", "An", "Nguyen", "an@acme.test", nil, "technician", now, now))

	p, err := repo.CreatePerson(context.Background(), testScope, repository.CreatePersonOptions{
		CompanyID: "com-1",
		FirstName: "An",
		LastName:  "Nguyen",
		Email:     "an@acme.test",
		Role:      "technician",
	})
	if err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}
	if p.FullName() != "An Nguyen" {
		t.Errorf("full name = %q", p.FullName())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
