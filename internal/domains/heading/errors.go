package heading

import "errors"

var (
	ErrHeadingNotFound = errors.New("heading not found")
	ErrDuplicateName   = errors.New("heading name already exists")
	ErrVersionMismatch = errors.New("heading was modified by another request")
)
