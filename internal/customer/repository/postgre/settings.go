package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fieldservice-srv/internal/customer/repository"
	"fieldservice-srv/internal/model"

	"github.com/google/uuid"
)

const settingsReturning = `id, tenant_id, customer_id, notify_on_status_change, notify_email, webhook_url, webhook_secret, invoice_due_days, created_at, updated_at`

func (r *implRepository) scanSettings(row *sql.Row) (model.CustomerSettings, error) {
	var (
		s             model.CustomerSettings
		notifyEmail   sql.NullString
		webhookURL    sql.NullString
		webhookSecret sql.NullString
	)

	err := row.Scan(
		&s.ID, &s.TenantID, &s.CustomerID, &s.NotifyOnStatusChange,
		&notifyEmail, &webhookURL, &webhookSecret, &s.InvoiceDueDays,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return model.CustomerSettings{}, err
	}

	if notifyEmail.Valid {
		s.NotifyEmail = notifyEmail.String
	}
	if webhookURL.Valid {
		s.WebhookURL = webhookURL.String
	}
	if webhookSecret.Valid && webhookSecret.String != "" {
		plain, err := r.enc.Decrypt(webhookSecret.String)
		if err != nil {
			return model.CustomerSettings{}, fmt.Errorf("decrypt webhook secret: %w", err)
		}
		s.WebhookSecret = plain
	}
	return s, nil
}

func (r *implRepository) GetCustomerSettings(ctx context.Context, sc model.Scope, customerID string) (model.CustomerSettings, error) {
	query := `
		SELECT ` + settingsReturning + `
		FROM fieldservice.customer_settings
		WHERE customer_id = $1 AND tenant_id = $2
	`

	s, err := r.scanSettings(r.db.QueryRowContext(ctx, query, customerID, sc.TenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CustomerSettings{}, repository.ErrNotFound
		}
		return model.CustomerSettings{}, fmt.Errorf("GetCustomerSettings: %w", err)
	}
	return s, nil
}

func (r *implRepository) UpsertCustomerSettings(ctx context.Context, sc model.Scope, opt repository.UpsertCustomerSettingsOptions) (model.CustomerSettings, error) {
	id := uuid.New().String()
	now := time.Now()

	// An empty secret binds NULL and the upsert keeps the stored value.
	var secret any
	if opt.WebhookSecret != "" {
		encrypted, err := r.enc.Encrypt(opt.WebhookSecret)
		if err != nil {
			return model.CustomerSettings{}, fmt.Errorf("UpsertCustomerSettings: encrypt webhook secret: %w", err)
		}
		secret = encrypted
	}

	query := `
		INSERT INTO fieldservice.customer_settings (id, tenant_id, customer_id, notify_on_status_change, notify_email, webhook_url, webhook_secret, invoice_due_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (tenant_id, customer_id) DO UPDATE
		SET notify_on_status_change = EXCLUDED.notify_on_status_change,
		    notify_email = EXCLUDED.notify_email,
		    webhook_url = EXCLUDED.webhook_url,
		    webhook_secret = COALESCE(EXCLUDED.webhook_secret, customer_settings.webhook_secret),
		    invoice_due_days = EXCLUDED.invoice_due_days,
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + settingsReturning + `
	`

	s, err := r.scanSettings(r.db.QueryRowContext(ctx, query,
		id, sc.TenantID, opt.CustomerID, opt.NotifyOnStatusChange,
		opt.NotifyEmail, opt.WebhookURL, secret, opt.InvoiceDueDays, now,
	))
	if err != nil {
		return model.CustomerSettings{}, fmt.Errorf("UpsertCustomerSettings: %w", err)
	}
	return s, nil
}
