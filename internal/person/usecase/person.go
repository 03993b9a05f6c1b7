package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldservice-srv/internal/model"
	"fieldservice-srv/internal/person"
	"fieldservice-srv/internal/person/repository"
	"fieldservice-srv/pkg/util"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input person.ListInput) (person.ListOutput, error) {
	page, err := uc.repo.ListPeople(ctx, sc, repository.ListPeopleOptions{
		Params: input.Params,
		Path:   input.Path,
	})
	if err != nil {
		uc.l.Errorf(ctx, "person.usecase.List: ListPeople failed: %v", err)
		return person.ListOutput{}, err
	}

	return person.ListOutput{
		People:     page.Items,
		Pagination: page.Pagination,
		Path:       page.Path,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input person.DetailInput) (model.Person, error) {
	p, err := uc.repo.GetPersonByID(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Person{}, person.ErrPersonNotFound
		}
		uc.l.Errorf(ctx, "person.usecase.Detail: GetPersonByID failed: %v", err)
		return model.Person{}, err
	}
	return p, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input person.CreateInput) (model.Person, error) {
	if strings.TrimSpace(input.FirstName) == "" && strings.TrimSpace(input.LastName) == "" {
		return model.Person{}, person.ErrNameRequired
	}
	if input.Email != "" {
		if err := util.IsEmail(input.Email); err != nil {
			return model.Person{}, person.ErrInvalidEmail
		}
	}
	if input.Phone != "" {
		if err := util.IsPhone(input.Phone); err != nil {
			return model.Person{}, person.ErrInvalidPhone
		}
	}

	p, err := uc.repo.CreatePerson(ctx, sc, repository.CreatePersonOptions{
		CompanyID: input.CompanyID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "person.usecase.Create: CreatePerson failed: %v", err)
		return model.Person{}, err
	}
	return p, nil
}
