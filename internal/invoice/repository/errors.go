package repository

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrFailedToList = errors.New("failed to list")
)
