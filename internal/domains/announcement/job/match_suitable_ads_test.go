package job

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/domains/suitablead"
	suitableadService "adboard-backend/internal/domains/suitablead/service"
	"adboard-backend/internal/infrastructure/email"
	"adboard-backend/internal/shared"
)

type stubAnnouncementRepo struct {
	byID map[uuid.UUID]*announcement.Announcement
}

func (s *stubAnnouncementRepo) Create(ctx context.Context, a *announcement.Announcement) (*announcement.Announcement, error) {
	return a, nil
}

func (s *stubAnnouncementRepo) GetByID(ctx context.Context, id uuid.UUID) (*announcement.Announcement, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, announcement.ErrAnnouncementNotFound
	}
	return a, nil
}

func (s *stubAnnouncementRepo) GetPage(ctx context.Context, filter announcement.ListFilter) ([]announcement.Announcement, int64, error) {
	return nil, 0, nil
}

func (s *stubAnnouncementRepo) Update(ctx context.Context, a *announcement.Announcement, currentVersion int) (*announcement.Announcement, error) {
	return a, nil
}

func (s *stubAnnouncementRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubAnnouncementRepo) DeleteByHeading(ctx context.Context, headingID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubAnnouncementRepo) PurgeInactive(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubSuitableAdRepo struct {
	matches      []suitablead.SuitableAd
	lastCategory string
	lastTitle    string
	lastPrice    decimal.Decimal
}

func (s *stubSuitableAdRepo) Create(ctx context.Context, ad *suitablead.SuitableAd) (*suitablead.SuitableAd, error) {
	return ad, nil
}

func (s *stubSuitableAdRepo) GetByID(ctx context.Context, id uuid.UUID) (*suitablead.SuitableAd, error) {
	return nil, suitablead.ErrSuitableAdNotFound
}

func (s *stubSuitableAdRepo) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]suitablead.SuitableAd, error) {
	return nil, nil
}

func (s *stubSuitableAdRepo) Update(ctx context.Context, ad *suitablead.SuitableAd, currentVersion int) (*suitablead.SuitableAd, error) {
	return ad, nil
}

func (s *stubSuitableAdRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubSuitableAdRepo) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubSuitableAdRepo) FindMatching(ctx context.Context, category, title string, price decimal.Decimal) ([]suitablead.SuitableAd, error) {
	s.lastCategory = category
	s.lastTitle = title
	s.lastPrice = price
	return s.matches, nil
}

type recordingEmailService struct {
	sent []email.SuitableAdMatchData
}

func (r *recordingEmailService) SendSuitableAdMatch(ctx context.Context, data email.SuitableAdMatchData) error {
	r.sent = append(r.sent, data)
	return nil
}

func matchTask(t *testing.T, id uuid.UUID) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(announcement.MatchSuitableAdsPayload{AnnouncementID: id})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeMatchSuitableAds, payload)
}

func TestMatchSuitableAdsSendsEmails(t *testing.T) {
	id := uuid.New()
	announcementRepo := &stubAnnouncementRepo{
		byID: map[uuid.UUID]*announcement.Announcement{
			id: {
				ID:          id,
				Title:       "Blue bicycle, barely used",
				Price:       decimal.NewFromInt(120),
				HeadingName: "Vehicles",
			},
		},
	}
	adRepo := &stubSuitableAdRepo{
		matches: []suitablead.SuitableAd{
			{Title: "bicycle", Email: "one@example.com"},
			{Title: "", Email: "two@example.com"},
		},
	}
	emails := &recordingEmailService{}

	h := NewMatchSuitableAdsHandler(announcementRepo, suitableadService.NewSuitableAdService(adRepo), emails)
	require.NoError(t, h.ProcessTask(context.Background(), matchTask(t, id)))

	// The query ran with the announcement's heading, title and price
	assert.Equal(t, "Vehicles", adRepo.lastCategory)
	assert.Equal(t, "Blue bicycle, barely used", adRepo.lastTitle)
	assert.True(t, adRepo.lastPrice.Equal(decimal.NewFromInt(120)))

	require.Len(t, emails.sent, 2)
	assert.Equal(t, "one@example.com", emails.sent[0].Email)
	assert.Equal(t, "Blue bicycle, barely used", emails.sent[0].AdTitle)
	assert.Equal(t, "Vehicles", emails.sent[0].Category)
	assert.Equal(t, "120.00", emails.sent[0].Price)
}

func TestMatchSuitableAdsDeletedAnnouncement(t *testing.T) {
	announcementRepo := &stubAnnouncementRepo{byID: map[uuid.UUID]*announcement.Announcement{}}
	adRepo := &stubSuitableAdRepo{}
	emails := &recordingEmailService{}

	h := NewMatchSuitableAdsHandler(announcementRepo, suitableadService.NewSuitableAdService(adRepo), emails)

	// A deleted announcement is not an error: the task completes and
	// no email goes out.
	require.NoError(t, h.ProcessTask(context.Background(), matchTask(t, uuid.New())))
	assert.Empty(t, emails.sent)
}
