package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard-backend/internal/domains/suitablead"
)

// mockRepo implements suitablead.Repository in memory, including the
// matching query semantics.
type mockRepo struct {
	items map[uuid.UUID]*suitablead.SuitableAd
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*suitablead.SuitableAd)}
}

func (m *mockRepo) Create(ctx context.Context, s *suitablead.SuitableAd) (*suitablead.SuitableAd, error) {
	s.ID = uuid.New()
	m.items[s.ID] = s
	return s, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*suitablead.SuitableAd, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, suitablead.ErrSuitableAdNotFound
	}
	return s, nil
}

func (m *mockRepo) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]suitablead.SuitableAd, error) {
	var out []suitablead.SuitableAd
	for _, s := range m.items {
		if s.AuthorID == authorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, s *suitablead.SuitableAd, currentVersion int) (*suitablead.SuitableAd, error) {
	existing, ok := m.items[s.ID]
	if !ok {
		return nil, suitablead.ErrSuitableAdNotFound
	}
	if existing.Version != currentVersion {
		return nil, suitablead.ErrVersionMismatch
	}
	s.AuthorID = existing.AuthorID
	s.Version = existing.Version + 1
	m.items[s.ID] = s
	return s, nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return suitablead.ErrSuitableAdNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var n int64
	for id, s := range m.items {
		if s.AuthorID == authorID {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

func (m *mockRepo) FindMatching(ctx context.Context, category, title string, price decimal.Decimal) ([]suitablead.SuitableAd, error) {
	var out []suitablead.SuitableAd
	for _, s := range m.items {
		if s.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(title), strings.ToLower(s.Title)) {
			continue
		}
		if price.LessThan(s.PriceFrom) || price.GreaterThan(s.PriceTo) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func validRequest() suitablead.SuitableAdRequest {
	return suitablead.SuitableAdRequest{
		Category:  "Vehicles",
		Title:     "bicycle",
		PriceFrom: 50,
		PriceTo:   500,
		Email:     "buyer@example.com",
	}
}

func TestCreateAndList(t *testing.T) {
	repo := newMockRepo()
	svc := NewSuitableAdService(repo)
	authorID := uuid.New()

	created, err := svc.Create(context.Background(), authorID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Vehicles", created.Category)
	assert.Equal(t, "buyer@example.com", created.Email)

	// Another author's subscription stays invisible
	_, err = svc.Create(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	mine, err := svc.GetByAuthor(context.Background(), authorID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCreateInvalidPriceRange(t *testing.T) {
	svc := NewSuitableAdService(newMockRepo())

	req := validRequest()
	req.PriceFrom = 500
	req.PriceTo = 50

	_, err := svc.Create(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestUpdateOwnership(t *testing.T) {
	repo := newMockRepo()
	svc := NewSuitableAdService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, validRequest())
	require.NoError(t, err)

	req := suitablead.UpdateSuitableAdRequest{
		SuitableAdRequest: validRequest(),
		Version:           0,
	}

	_, err = svc.Update(context.Background(), created.ID, uuid.New(), req)
	assert.ErrorIs(t, err, suitablead.ErrNotOwner)

	updated, err := svc.Update(context.Background(), created.ID, owner, req)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Version)
}

func TestDeleteOwnership(t *testing.T) {
	repo := newMockRepo()
	svc := NewSuitableAdService(repo)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, validRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, suitablead.ErrNotOwner)

	require.NoError(t, svc.Delete(context.Background(), created.ID, owner))

	err = svc.Delete(context.Background(), created.ID, owner)
	assert.ErrorIs(t, err, suitablead.ErrSuitableAdNotFound)
}

func TestFindMatching(t *testing.T) {
	repo := newMockRepo()
	svc := NewSuitableAdService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	wrongCategory := validRequest()
	wrongCategory.Category = "Furniture"
	_, err = svc.Create(context.Background(), uuid.New(), wrongCategory)
	require.NoError(t, err)

	tooExpensive := validRequest()
	tooExpensive.PriceTo = 100
	_, err = svc.Create(context.Background(), uuid.New(), tooExpensive)
	require.NoError(t, err)

	matches, err := svc.FindMatching(context.Background(),
		"Vehicles", "Blue bicycle, barely used", decimal.NewFromInt(120))
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "Vehicles", matches[0].Category)
	assert.Equal(t, "bicycle", matches[0].Title)
}
