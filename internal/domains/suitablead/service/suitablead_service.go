package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adboard-backend/internal/domains/suitablead"
)

type suitableAdService struct {
	repo suitablead.Repository
}

func NewSuitableAdService(repo suitablead.Repository) suitablead.Service {
	return &suitableAdService{repo: repo}
}

func (s *suitableAdService) Create(ctx context.Context, authorID uuid.UUID, req suitablead.SuitableAdRequest) (*suitablead.SuitableAdResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ad := &suitablead.SuitableAd{
		AuthorID:  authorID,
		Category:  req.Category,
		Title:     req.Title,
		PriceFrom: decimal.NewFromFloat(req.PriceFrom),
		PriceTo:   decimal.NewFromFloat(req.PriceTo),
		Email:     req.Email,
	}

	created, err := s.repo.Create(ctx, ad)
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *suitableAdService) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]suitablead.SuitableAdResponse, error) {
	ads, err := s.repo.GetByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	responses := make([]suitablead.SuitableAdResponse, 0, len(ads))
	for _, ad := range ads {
		responses = append(responses, *ad.ToResponse())
	}

	return responses, nil
}

func (s *suitableAdService) Update(ctx context.Context, id, authorID uuid.UUID, req suitablead.UpdateSuitableAdRequest) (*suitablead.SuitableAdResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != authorID {
		return nil, suitablead.ErrNotOwner
	}

	existing.Category = req.Category
	existing.Title = req.Title
	existing.PriceFrom = decimal.NewFromFloat(req.PriceFrom)
	existing.PriceTo = decimal.NewFromFloat(req.PriceTo)
	existing.Email = req.Email

	updated, err := s.repo.Update(ctx, existing, req.Version)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

func (s *suitableAdService) Delete(ctx context.Context, id, authorID uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != authorID {
		return suitablead.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func (s *suitableAdService) FindMatching(ctx context.Context, category, title string, price decimal.Decimal) ([]suitablead.SuitableAd, error) {
	return s.repo.FindMatching(ctx, category, title, price)
}
