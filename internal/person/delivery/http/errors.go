package http

import (
	"errors"

	"fieldservice-srv/internal/person"
	pkgErrors "fieldservice-srv/pkg/errors"
)

var (
	errPersonNotFound = pkgErrors.NewHTTPError(404, "Person not found")
	errNameRequired   = pkgErrors.NewHTTPError(400, "First or last name is required")
	errInvalidEmail   = pkgErrors.NewHTTPError(400, "Invalid email")
	errInvalidPhone   = pkgErrors.NewHTTPError(400, "Invalid phone")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, person.ErrPersonNotFound):
		return errPersonNotFound
	case errors.Is(err, person.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, person.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, person.ErrInvalidPhone):
		return errInvalidPhone
	default:
		return err
	}
}
