package usecase

import (
	"context"
	"errors"
	"net/url"

	"fieldservice-srv/internal/customer"
	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"
	"fieldservice-srv/pkg/util"
)

const maxInvoiceDueDays = 365

// GetSettings reads through the cache. Customers without stored settings get
// zero-value defaults rather than an error, so callers need no existence
// check before reading.
func (uc *implUseCase) GetSettings(ctx context.Context, sc model.Scope, input customer.GetSettingsInput) (model.CustomerSettings, error) {
	if s, err := uc.cache.GetSettings(ctx, sc.TenantID, input.CustomerID); err == nil {
		return s, nil
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "customer.usecase.GetSettings: cache read failed: %v", err)
	}

	s, err := uc.repo.GetCustomerSettings(ctx, sc, input.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if _, err := uc.Detail(ctx, sc, customer.DetailInput{ID: input.CustomerID}); err != nil {
				return model.CustomerSettings{}, err
			}
			return model.CustomerSettings{
				TenantID:       sc.TenantID,
				CustomerID:     input.CustomerID,
				InvoiceDueDays: 30,
			}, nil
		}
		uc.l.Errorf(ctx, "customer.usecase.GetSettings: GetCustomerSettings failed: %v", err)
		return model.CustomerSettings{}, err
	}

	if err := uc.cache.SaveSettings(ctx, s); err != nil {
		uc.l.Warnf(ctx, "customer.usecase.GetSettings: cache write failed: %v", err)
	}
	return s, nil
}

func (uc *implUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input customer.UpdateSettingsInput) (model.CustomerSettings, error) {
	if input.NotifyEmail != "" {
		if err := util.IsEmail(input.NotifyEmail); err != nil {
			return model.CustomerSettings{}, customer.ErrInvalidEmail
		}
	}
	if input.WebhookURL != "" {
		u, err := url.Parse(input.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return model.CustomerSettings{}, customer.ErrInvalidWebhook
		}
	}
	if input.InvoiceDueDays < 0 || input.InvoiceDueDays > maxInvoiceDueDays {
		return model.CustomerSettings{}, customer.ErrInvalidDueDays
	}

	if _, err := uc.Detail(ctx, sc, customer.DetailInput{ID: input.CustomerID}); err != nil {
		return model.CustomerSettings{}, err
	}

	s, err := uc.repo.UpsertCustomerSettings(ctx, sc, repository.UpsertCustomerSettingsOptions{
		CustomerID:           input.CustomerID,
		NotifyOnStatusChange: input.NotifyOnStatusChange,
		NotifyEmail:          input.NotifyEmail,
		WebhookURL:           input.WebhookURL,
		WebhookSecret:        input.WebhookSecret,
		InvoiceDueDays:       input.InvoiceDueDays,
	})
	if err != nil {
		uc.l.Errorf(ctx, "customer.usecase.UpdateSettings: UpsertCustomerSettings failed: %v", err)
		return model.CustomerSettings{}, err
	}

	if err := uc.cache.InvalidateSettings(ctx, sc.TenantID, input.CustomerID); err != nil {
		uc.l.Warnf(ctx, "customer.usecase.UpdateSettings: cache invalidation failed: %v", err)
	}
	return s, nil
}
