package http

import (
	"errors"

	"fieldservice-srv/internal/invoice"
	pkgErrors "fieldservice-srv/pkg/errors"
)

var (
	errInvoiceNotFound = pkgErrors.NewHTTPError(404, "Invoice not found")
	errAlreadyPaid     = pkgErrors.NewHTTPError(409, "Invoice already paid")
	errInvoiceVoid     = pkgErrors.NewHTTPError(409, "Invoice is void")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		return errInvoiceNotFound
	case errors.Is(err, invoice.ErrAlreadyPaid):
		return errAlreadyPaid
	case errors.Is(err, invoice.ErrInvoiceVoid):
		return errInvoiceVoid
	default:
		return err
	}
}
