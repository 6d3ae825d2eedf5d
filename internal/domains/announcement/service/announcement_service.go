package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/domains/heading"
	"adboard-backend/internal/shared/utils"
	"adboard-backend/pkg/logger"
)

// announcementService implements announcement.Service
type announcementService struct {
	repo        announcement.Repository
	headingRepo heading.Repository
	enqueuer    announcement.TaskEnqueuer
}

func NewAnnouncementService(
	repo announcement.Repository,
	headingRepo heading.Repository,
	enqueuer announcement.TaskEnqueuer,
) announcement.Service {
	return &announcementService{
		repo:        repo,
		headingRepo: headingRepo,
		enqueuer:    enqueuer,
	}
}

// Create persists a new announcement and hands the suitable-ad
// matching side effect to the worker queue.
func (s *announcementService) Create(ctx context.Context, authorID uuid.UUID, req announcement.CreateRequest) (*announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// An announcement always references an existing heading. The DB
	// foreign key backs this; checking here gives a clean error before
	// the insert.
	exists, err := s.headingRepo.ExistsByID(ctx, req.HeadingID)
	if err != nil {
		return nil, fmt.Errorf("check heading exists: %w", err)
	}
	if !exists {
		return nil, announcement.ErrHeadingNotFound
	}

	entity := &announcement.Announcement{
		Title:     req.Title,
		Text:      req.Text,
		Price:     decimal.NewFromFloat(req.Price),
		HeadingID: req.HeadingID,
		AuthorID:  authorID,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	// Fire the email-matching task. Enqueue failure must not fail the
	// request: the announcement is already saved.
	if err := s.enqueuer.EnqueueMatchSuitableAds(ctx, created.ID); err != nil {
		logger.Error("failed to enqueue suitable-ad matching", err)
	}

	return created.ToResponse(), nil
}

func (s *announcementService) Get(ctx context.Context, id uuid.UUID) (*announcement.AnnouncementResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return a.ToResponse(), nil
}

// List returns one page of announcements, at most limit rows
func (s *announcementService) List(ctx context.Context, page, limit int) ([]announcement.AnnouncementResponse, int64, error) {
	page, limit = utils.NormalizePagination(page, limit)

	items, total, err := s.repo.GetPage(ctx, announcement.ListFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *items[i].ToResponse())
	}

	return responses, total, nil
}

// Update replaces the announcement's fields. Only the owning author
// may update it.
func (s *announcementService) Update(ctx context.Context, id, authorID uuid.UUID, req announcement.UpdateRequest) (*announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != authorID {
		return nil, announcement.ErrNotOwner
	}

	exists, err := s.headingRepo.ExistsByID(ctx, req.HeadingID)
	if err != nil {
		return nil, fmt.Errorf("check heading exists: %w", err)
	}
	if !exists {
		return nil, announcement.ErrHeadingNotFound
	}

	entity := &announcement.Announcement{
		ID:        id,
		Title:     req.Title,
		Text:      req.Text,
		Price:     decimal.NewFromFloat(req.Price),
		Active:    req.Active,
		HeadingID: req.HeadingID,
	}

	updated, err := s.repo.Update(ctx, entity, req.Version)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(), nil
}

// Delete removes one announcement. Only the owning author may delete it.
func (s *announcementService) Delete(ctx context.Context, id, authorID uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != authorID {
		return announcement.ErrNotOwner
	}

	return s.repo.DeleteByID(ctx, id)
}

func (s *announcementService) DeleteByHeading(ctx context.Context, headingID uuid.UUID) (int64, error) {
	exists, err := s.headingRepo.ExistsByID(ctx, headingID)
	if err != nil {
		return 0, fmt.Errorf("check heading exists: %w", err)
	}
	if !exists {
		return 0, announcement.ErrHeadingNotFound
	}

	return s.repo.DeleteByHeading(ctx, headingID)
}

// PurgeInactive deletes announcements flagged inactive. Called by the
// scheduled housekeeping job and the admin endpoint.
func (s *announcementService) PurgeInactive(ctx context.Context) (int64, error) {
	return s.repo.PurgeInactive(ctx)
}
