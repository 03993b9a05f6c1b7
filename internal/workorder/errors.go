package workorder

import "errors"

var (
	ErrWorkOrderNotFound = errors.New("workorder: work order not found")
	ErrCustomerNotFound  = errors.New("workorder: customer not found")
	ErrTitleRequired     = errors.New("workorder: title is required")
	ErrInvalidPriority   = errors.New("workorder: invalid priority")
	ErrInvalidStatus     = errors.New("workorder: invalid status")
	ErrInvalidTransition = errors.New("workorder: invalid status transition")
	ErrTechnicianMissing = errors.New("workorder: technician_id is required")
)
