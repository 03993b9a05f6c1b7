package model

import "time"

// Person represents a contact: a customer employee, a technician, or any
// other individual the tenant tracks.
type Person struct {
	ID        string
	TenantID  string
	CompanyID string

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string

	CreatedAt time.Time
	UpdatedAt time.Time

	// CompanyName is populated by listing queries that join companies.
	CompanyName string
}

// FullName joins the name parts the same way the database person_name
// expression does.
func (p Person) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
