package http

import (
	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/person"
	"fieldservice-srv/pkg/paginator"
	"fieldservice-srv/pkg/response"
)

type createReq struct {
	CompanyID string `json:"company_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (r createReq) toInput() person.CreateInput {
	return person.CreateInput{
		CompanyID: r.CompanyID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
	}
}

type personResp struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	FullName    string `json:"full_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type listResp struct {
	People     []personResp                `json:"people"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func (h *handler) newPersonResp(p model.Person) personResp {
	return personResp{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CompanyName: p.CompanyName,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		Email:       p.Email,
		Phone:       p.Phone,
		Role:        p.Role,
		CreatedAt:   p.CreatedAt.Format(response.DateTimeFormat),
		UpdatedAt:   p.UpdatedAt.Format(response.DateTimeFormat),
	}
}

func (h *handler) newListResp(o person.ListOutput) listResp {
	items := make([]personResp, 0, len(o.People))
	for _, p := range o.People {
		items = append(items, h.newPersonResp(p))
	}

	pagination := o.Pagination.ToResponse()
	pagination.Path = o.Path

	return listResp{
		People:     items,
		Pagination: pagination,
	}
}
