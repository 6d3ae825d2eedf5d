package suitablead

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository is the data access contract for suitable ads.
type Repository interface {
	Create(ctx context.Context, s *SuitableAd) (*SuitableAd, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SuitableAd, error)
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]SuitableAd, error)
	Update(ctx context.Context, s *SuitableAd, currentVersion int) (*SuitableAd, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAuthor removes every suitable ad owned by the author.
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)

	// FindMatching returns the subscriptions an announcement satisfies:
	// category equals the heading name, the stored title fragment is
	// contained in the announcement title, and the price falls inside
	// the subscription's range.
	FindMatching(ctx context.Context, category, title string, price decimal.Decimal) ([]SuitableAd, error)
}

// Service is the business logic contract for suitable ads.
type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, req SuitableAdRequest) (*SuitableAdResponse, error)
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]SuitableAdResponse, error)
	Update(ctx context.Context, id, authorID uuid.UUID, req UpdateSuitableAdRequest) (*SuitableAdResponse, error)
	Delete(ctx context.Context, id, authorID uuid.UUID) error
	FindMatching(ctx context.Context, category, title string, price decimal.Decimal) ([]SuitableAd, error)
}
