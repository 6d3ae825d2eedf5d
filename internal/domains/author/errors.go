package author

import "errors"

// Domain errors. Repositories translate driver errors into these so
// handlers can map them to HTTP status codes with errors.Is().
var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrDuplicateName      = errors.New("author name already taken")
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrVersionMismatch    = errors.New("author was modified by another request")
)
