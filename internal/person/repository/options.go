package repository

import "net/url"

type ListPeopleOptions struct {
	Params url.Values
	Path   string
}

type CreatePersonOptions struct {
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}
