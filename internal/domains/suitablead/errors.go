package suitablead

import "errors"

var (
	ErrSuitableAdNotFound = errors.New("suitable ad not found")
	ErrNotOwner           = errors.New("suitable ad belongs to another author")
	ErrVersionMismatch    = errors.New("suitable ad was modified by another request")
)
