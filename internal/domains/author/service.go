package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the author domain.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthorDTO, error)
	Authenticate(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*AuthorDTO, error)
	List(ctx context.Context) ([]AuthorDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*AuthorDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAnnouncementsByAuthor(ctx context.Context, id uuid.UUID) (int64, error)
}
