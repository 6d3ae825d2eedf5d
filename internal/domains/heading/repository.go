package heading

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for headings.
type Repository interface {
	Create(ctx context.Context, h *Heading) (*Heading, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Heading, error)
	GetAll(ctx context.Context) ([]Heading, error)
	Update(ctx context.Context, h *Heading, currentVersion int) (*Heading, error)

	// Delete removes the heading's announcements first, then the
	// heading row, inside one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID backs the announcement-side FK validation.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service is the business logic contract for headings.
type Service interface {
	Create(ctx context.Context, req HeadingRequest) (*HeadingResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*HeadingResponse, error)
	GetAll(ctx context.Context) ([]HeadingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateHeadingRequest) (*HeadingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
