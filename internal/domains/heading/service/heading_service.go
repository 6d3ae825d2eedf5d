package service

import (
	"context"

	"github.com/google/uuid"

	"adboard-backend/internal/domains/heading"
)

// headingService implements heading.Service
type headingService struct {
	repo heading.Repository
}

func NewHeadingService(repo heading.Repository) heading.Service {
	return &headingService{repo: repo}
}

func (s *headingService) Create(ctx context.Context, req heading.HeadingRequest) (*heading.HeadingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &heading.Heading{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return created.ToResponse(), nil
}

func (s *headingService) Get(ctx context.Context, id uuid.UUID) (*heading.HeadingResponse, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return h.ToResponse(), nil
}

func (s *headingService) GetAll(ctx context.Context) ([]heading.HeadingResponse, error) {
	headings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]heading.HeadingResponse, 0, len(headings))
	for i := range headings {
		responses = append(responses, *headings[i].ToResponse())
	}

	return responses, nil
}

func (s *headingService) Update(ctx context.Context, id uuid.UUID, req heading.UpdateHeadingRequest) (*heading.HeadingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &heading.Heading{ID: id, Name: req.Name}, req.Version)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

// Delete cascades to the heading's announcements in the repository
func (s *headingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
