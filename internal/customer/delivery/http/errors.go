package http

import (
	"errors"

	"fieldservice-srv/internal/customer"
	pkgErrors "fieldservice-srv/pkg/errors"
)

var (
	errCustomerNotFound = pkgErrors.NewHTTPError(404, "Customer not found")
	errInvalidEmail     = pkgErrors.NewHTTPError(400, "Invalid notify email")
	errInvalidWebhook   = pkgErrors.NewHTTPError(400, "Webhook URL must be http or https")
	errInvalidDueDays   = pkgErrors.NewHTTPError(400, "Invoice due days out of range")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return errCustomerNotFound
	case errors.Is(err, customer.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, customer.ErrInvalidWebhook):
		return errInvalidWebhook
	case errors.Is(err, customer.ErrInvalidDueDays):
		return errInvalidDueDays
	default:
		return err
	}
}
