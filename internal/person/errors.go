package person

import "errors"

var (
	ErrPersonNotFound = errors.New("person: person not found")
	ErrNameRequired   = errors.New("person: first or last name is required")
	ErrInvalidEmail   = errors.New("person: invalid email")
	ErrInvalidPhone   = errors.New("person: invalid phone")
)
