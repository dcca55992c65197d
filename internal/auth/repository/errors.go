package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert credential")
	ErrFailedToGet    = errors.New("failed to get credential")
	ErrFailedToDelete = errors.New("failed to delete credential")
)
