package usecase

import (
	"context"
	"errors"

	"fieldservice-srv/internal/customer"
	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input customer.ListInput) (customer.ListOutput, error) {
	page, err := uc.repo.ListCustomers(ctx, sc, repository.ListCustomersOptions{
		Params: input.Params,
		Path:   input.Path,
	})
	if err != nil {
		uc.l.Errorf(ctx, "customer.usecase.List: ListCustomers failed: %v", err)
		return customer.ListOutput{}, err
	}

	return customer.ListOutput{
		Customers:  page.Items,
		Pagination: page.Pagination,
		Path:       page.Path,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input customer.DetailInput) (model.Customer, error) {
	c, err := uc.repo.GetCustomerByID(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Customer{}, customer.ErrCustomerNotFound
		}
		uc.l.Errorf(ctx, "customer.usecase.Detail: GetCustomerByID failed: %v", err)
		return model.Customer{}, err
	}
	return c, nil
}
