package repository

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToUpdate = errors.New("failed to update")
)
