package usecase

import (
	"context"
	"errors"

	"fieldservice-srv/internal/invoice"
	"fieldservice-srv/internal/invoice/repository"
	"fieldservice-srv/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input invoice.ListInput) (invoice.ListOutput, error) {
	page, err := uc.repo.ListInvoices(ctx, sc, repository.ListInvoicesOptions{
		Params: input.Params,
		Path:   input.Path,
	})
	if err != nil {
		uc.l.Errorf(ctx, "invoice.usecase.List: ListInvoices failed: %v", err)
		return invoice.ListOutput{}, err
	}

	return invoice.ListOutput{
		Invoices:   page.Items,
		Pagination: page.Pagination,
		Path:       page.Path,
	}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input invoice.DetailInput) (model.Invoice, error) {
	inv, err := uc.repo.GetInvoiceByID(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Invoice{}, invoice.ErrInvoiceNotFound
		}
		uc.l.Errorf(ctx, "invoice.usecase.Detail: GetInvoiceByID failed: %v", err)
		return model.Invoice{}, err
	}
	return inv, nil
}

func (uc *implUseCase) MarkPaid(ctx context.Context, sc model.Scope, input invoice.MarkPaidInput) (model.Invoice, error) {
	current, err := uc.Detail(ctx, sc, invoice.DetailInput{ID: input.ID})
	if err != nil {
		return model.Invoice{}, err
	}

	switch current.Status {
	case model.InvoiceStatusPaid:
		return model.Invoice{}, invoice.ErrAlreadyPaid
	case model.InvoiceStatusVoid:
		return model.Invoice{}, invoice.ErrInvoiceVoid
	}

	inv, err := uc.repo.MarkInvoicePaid(ctx, sc, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Invoice{}, invoice.ErrInvoiceNotFound
		}
		uc.l.Errorf(ctx, "invoice.usecase.MarkPaid: MarkInvoicePaid failed: %v", err)
		return model.Invoice{}, err
	}
	return inv, nil
}

func (uc *implUseCase) RevenueSummary(ctx context.Context, sc model.Scope, input invoice.RevenueSummaryInput) (invoice.RevenueSummaryOutput, error) {
	page, err := uc.repo.RevenueSummary(ctx, sc, repository.RevenueSummaryOptions{
		Params:     input.Params,
		Path:       input.Path,
		MinRevenue: input.MinRevenue,
	})
	if err != nil {
		uc.l.Errorf(ctx, "invoice.usecase.RevenueSummary: RevenueSummary failed: %v", err)
		return invoice.RevenueSummaryOutput{}, err
	}

	return invoice.RevenueSummaryOutput{
		Rows:       page.Items,
		Pagination: page.Pagination,
		Path:       page.Path,
	}, nil
}
