package http

import (
	"errors"

	"fieldservice-srv/internal/workorder"
	pkgErrors "fieldservice-srv/pkg/errors"
)

var (
	errWorkOrderNotFound = pkgErrors.NewHTTPError(404, "Work order not found")
	errCustomerNotFound  = pkgErrors.NewHTTPError(400, "Customer not found")
	errTitleRequired     = pkgErrors.NewHTTPError(400, "Title is required")
	errInvalidPriority   = pkgErrors.NewHTTPError(400, "Priority must be between 1 and 5")
	errInvalidStatus     = pkgErrors.NewHTTPError(400, "Unknown work order status")
	errInvalidTransition = pkgErrors.NewHTTPError(409, "Status transition not allowed")
	errTechnicianMissing = pkgErrors.NewHTTPError(400, "Technician ID is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, workorder.ErrWorkOrderNotFound):
		return errWorkOrderNotFound
	case errors.Is(err, workorder.ErrCustomerNotFound):
		return errCustomerNotFound
	case errors.Is(err, workorder.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, workorder.ErrInvalidPriority):
		return errInvalidPriority
	case errors.Is(err, workorder.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, workorder.ErrInvalidTransition):
		return errInvalidTransition
	case errors.Is(err, workorder.ErrTechnicianMissing):
		return errTechnicianMissing
	default:
		return err
	}
}
