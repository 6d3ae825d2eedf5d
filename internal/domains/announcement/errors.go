package announcement

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrHeadingNotFound      = errors.New("announcement heading does not exist")
	ErrNotOwner             = errors.New("announcement belongs to another author")
	ErrVersionMismatch      = errors.New("announcement was modified by another request")
)
