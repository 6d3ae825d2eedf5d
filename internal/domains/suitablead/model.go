package suitablead

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SuitableAd is a saved search owned by an author: when a new
// announcement is published whose heading matches Category, whose
// title contains Title and whose price falls inside [PriceFrom,
// PriceTo], a notification email goes to Email. Deleted together with
// the owning author.
type SuitableAd struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	AuthorID  uuid.UUID       `json:"author_id" db:"author_id"`
	Category  string          `json:"category" db:"category"`
	Title     string          `json:"title" db:"title"`
	PriceFrom decimal.Decimal `json:"price_from" db:"price_from"`
	PriceTo   decimal.Decimal `json:"price_to" db:"price_to"`
	Email     string          `json:"email" db:"email"`
	Version   int             `json:"version" db:"version"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type SuitableAdResponse struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Title     string          `json:"title"`
	PriceFrom decimal.Decimal `json:"price_from"`
	PriceTo   decimal.Decimal `json:"price_to"`
	Email     string          `json:"email"`
	Version   int             `json:"version"`
}

func (s *SuitableAd) ToResponse() *SuitableAdResponse {
	return &SuitableAdResponse{
		ID:        s.ID,
		Category:  s.Category,
		Title:     s.Title,
		PriceFrom: s.PriceFrom,
		PriceTo:   s.PriceTo,
		Email:     s.Email,
		Version:   s.Version,
	}
}
