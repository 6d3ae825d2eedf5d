package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the author aggregate.
type Repository interface {
	// Create inserts the author, its contact rows and its role
	// association in one transaction.
	Create(ctx context.Context, a *Author) error

	// GetByID loads the author with its contact collections.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByName is the login lookup.
	GetByName(ctx context.Context, name string) (*Author, error)

	// GetAll returns every author without contact collections,
	// for the administrative listing.
	GetAll(ctx context.Context) ([]Author, error)

	// Update replaces profile fields and contact collections with an
	// optimistic version check.
	Update(ctx context.Context, a *Author, currentVersion int) (*Author, error)

	// Delete removes the author and every dependent row in one
	// transaction: announcements, role association, contacts, then
	// the author itself. Suitable ads are the suitable ad
	// repository's concern and must be removed by the caller first.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAnnouncementsByAuthor removes all announcements published
	// by the author, returning the number of deleted rows.
	DeleteAnnouncementsByAuthor(ctx context.Context, id uuid.UUID) (int64, error)

	ExistsByName(ctx context.Context, name string) (bool, error)
}
