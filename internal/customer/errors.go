package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer: customer not found")
	ErrInvalidEmail     = errors.New("customer: invalid notify email")
	ErrInvalidWebhook   = errors.New("customer: webhook URL must be http or https")
	ErrInvalidDueDays   = errors.New("customer: invoice due days out of range")
)
