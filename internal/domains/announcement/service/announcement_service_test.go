package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/domains/heading"
)

type mockAnnouncementRepo struct {
	items       map[uuid.UUID]*announcement.Announcement
	purged      int64
	byHeading   int64
	lastCreated *announcement.Announcement
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{items: make(map[uuid.UUID]*announcement.Announcement)}
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, a *announcement.Announcement) (*announcement.Announcement, error) {
	a.ID = uuid.New()
	a.Active = true
	m.items[a.ID] = a
	m.lastCreated = a
	return a, nil
}

func (m *mockAnnouncementRepo) GetByID(ctx context.Context, id uuid.UUID) (*announcement.Announcement, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, announcement.ErrAnnouncementNotFound
	}
	return a, nil
}

func (m *mockAnnouncementRepo) GetPage(ctx context.Context, filter announcement.ListFilter) ([]announcement.Announcement, int64, error) {
	var out []announcement.Announcement
	for _, a := range m.items {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (m *mockAnnouncementRepo) Update(ctx context.Context, a *announcement.Announcement, currentVersion int) (*announcement.Announcement, error) {
	existing, ok := m.items[a.ID]
	if !ok {
		return nil, announcement.ErrAnnouncementNotFound
	}
	if existing.Version != currentVersion {
		return nil, announcement.ErrVersionMismatch
	}
	a.AuthorID = existing.AuthorID
	a.Version = existing.Version + 1
	m.items[a.ID] = a
	return a, nil
}

func (m *mockAnnouncementRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return announcement.ErrAnnouncementNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockAnnouncementRepo) DeleteByHeading(ctx context.Context, headingID uuid.UUID) (int64, error) {
	return m.byHeading, nil
}

func (m *mockAnnouncementRepo) PurgeInactive(ctx context.Context) (int64, error) {
	return m.purged, nil
}

// mockHeadingRepo fakes the heading repository. The announcement
// service only ever calls ExistsByID.
type mockHeadingRepo struct {
	known map[uuid.UUID]bool
}

func (m *mockHeadingRepo) Create(ctx context.Context, h *heading.Heading) (*heading.Heading, error) {
	return h, nil
}

func (m *mockHeadingRepo) GetByID(ctx context.Context, id uuid.UUID) (*heading.Heading, error) {
	return nil, heading.ErrHeadingNotFound
}

func (m *mockHeadingRepo) GetAll(ctx context.Context) ([]heading.Heading, error) {
	return nil, nil
}

func (m *mockHeadingRepo) Update(ctx context.Context, h *heading.Heading, currentVersion int) (*heading.Heading, error) {
	return nil, heading.ErrHeadingNotFound
}

func (m *mockHeadingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return heading.ErrHeadingNotFound
}

func (m *mockHeadingRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.known[id], nil
}

type mockEnqueuer struct {
	enqueued []uuid.UUID
	err      error
}

func (m *mockEnqueuer) EnqueueMatchSuitableAds(ctx context.Context, announcementID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, announcementID)
	return nil
}

type fixture struct {
	repo      *mockAnnouncementRepo
	headingID uuid.UUID
	enqueuer  *mockEnqueuer
	svc       announcement.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newMockAnnouncementRepo()
	headingID := uuid.New()
	headings := &mockHeadingRepo{known: map[uuid.UUID]bool{headingID: true}}
	enqueuer := &mockEnqueuer{}

	return &fixture{
		repo:      repo,
		headingID: headingID,
		enqueuer:  enqueuer,
		svc:       NewAnnouncementService(repo, headings, enqueuer),
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), uuid.New(), announcement.CreateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used, great condition",
		Price:     120.50,
		HeadingID: f.headingID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Blue bicycle", resp.Title)
	assert.True(t, resp.Active)

	// Matching runs asynchronously for the new announcement
	require.Len(t, f.enqueuer.enqueued, 1)
	assert.Equal(t, resp.ID, f.enqueuer.enqueued[0])
}

func TestCreateUnknownHeading(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), uuid.New(), announcement.CreateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used",
		Price:     120.50,
		HeadingID: uuid.New(),
	})
	assert.ErrorIs(t, err, announcement.ErrHeadingNotFound)
	assert.Empty(t, f.enqueuer.enqueued)
}

func TestCreateSurvivesEnqueueFailure(t *testing.T) {
	f := newFixture(t)
	f.enqueuer.err = errors.New("redis down")

	resp, err := f.svc.Create(context.Background(), uuid.New(), announcement.CreateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used",
		Price:     120.50,
		HeadingID: f.headingID,
	})
	// The announcement is saved even when the queue is unreachable
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Contains(t, f.repo.items, resp.ID)
}

func TestUpdateByNonOwner(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()

	resp, err := f.svc.Create(context.Background(), owner, announcement.CreateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used",
		Price:     120.50,
		HeadingID: f.headingID,
	})
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), resp.ID, uuid.New(), announcement.UpdateRequest{
		Title:     "Stolen bicycle",
		Text:      "cheap",
		Price:     1,
		HeadingID: f.headingID,
		Active:    true,
		Version:   0,
	})
	assert.ErrorIs(t, err, announcement.ErrNotOwner)
}

func TestUpdateVersionMismatch(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()

	resp, err := f.svc.Create(context.Background(), owner, announcement.CreateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used",
		Price:     120.50,
		HeadingID: f.headingID,
	})
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), resp.ID, owner, announcement.UpdateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used",
		Price:     120.50,
		HeadingID: f.headingID,
		Active:    false,
		Version:   9,
	})
	assert.ErrorIs(t, err, announcement.ErrVersionMismatch)
}

func TestDeleteByNonOwner(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()

	resp, err := f.svc.Create(context.Background(), owner, announcement.CreateRequest{
		Title:     "Blue bicycle",
		Text:      "Barely used",
		Price:     120.50,
		HeadingID: f.headingID,
	})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), resp.ID, uuid.New())
	assert.ErrorIs(t, err, announcement.ErrNotOwner)

	require.NoError(t, f.svc.Delete(context.Background(), resp.ID, owner))
	_, err = f.svc.Get(context.Background(), resp.ID)
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)
}

func TestDeleteByHeadingUnknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.DeleteByHeading(context.Background(), uuid.New())
	assert.ErrorIs(t, err, announcement.ErrHeadingNotFound)
}

func TestPurgeInactive(t *testing.T) {
	f := newFixture(t)
	f.repo.purged = 3

	count, err := f.svc.PurgeInactive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
