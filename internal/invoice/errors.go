package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice: invoice not found")
	ErrAlreadyPaid     = errors.New("invoice: invoice already paid")
	ErrInvoiceVoid     = errors.New("invoice: invoice is void")
)
