package person

import (
	"net/url"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/paginator"
)

type ListInput struct {
	Params url.Values
	Path   string
}

type ListOutput struct {
	People     []model.Person
	Pagination paginator.Paginator
	Path       string
}

type DetailInput struct {
	ID string
}

type CreateInput struct {
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}
