package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard-backend/internal/domains/heading"
)

type mockRepo struct {
	items map[uuid.UUID]*heading.Heading
	names map[string]bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		items: make(map[uuid.UUID]*heading.Heading),
		names: make(map[string]bool),
	}
}

func (m *mockRepo) Create(ctx context.Context, h *heading.Heading) (*heading.Heading, error) {
	if m.names[h.Name] {
		return nil, heading.ErrDuplicateName
	}
	h.ID = uuid.New()
	m.items[h.ID] = h
	m.names[h.Name] = true
	return h, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*heading.Heading, error) {
	h, ok := m.items[id]
	if !ok {
		return nil, heading.ErrHeadingNotFound
	}
	return h, nil
}

func (m *mockRepo) GetAll(ctx context.Context) ([]heading.Heading, error) {
	var out []heading.Heading
	for _, h := range m.items {
		out = append(out, *h)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, h *heading.Heading, currentVersion int) (*heading.Heading, error) {
	existing, ok := m.items[h.ID]
	if !ok {
		return nil, heading.ErrHeadingNotFound
	}
	if existing.Version != currentVersion {
		return nil, heading.ErrVersionMismatch
	}
	existing.Name = h.Name
	existing.Version++
	return existing, nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return heading.ErrHeadingNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.items[id]
	return ok, nil
}

func TestCreateHeading(t *testing.T) {
	svc := NewHeadingService(newMockRepo())

	resp, err := svc.Create(context.Background(), heading.HeadingRequest{Name: "Vehicles"})
	require.NoError(t, err)
	assert.Equal(t, "Vehicles", resp.Name)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateHeadingDuplicate(t *testing.T) {
	svc := NewHeadingService(newMockRepo())

	_, err := svc.Create(context.Background(), heading.HeadingRequest{Name: "Vehicles"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), heading.HeadingRequest{Name: "Vehicles"})
	assert.ErrorIs(t, err, heading.ErrDuplicateName)
}

func TestCreateHeadingInvalidName(t *testing.T) {
	svc := NewHeadingService(newMockRepo())

	_, err := svc.Create(context.Background(), heading.HeadingRequest{Name: "x"})
	assert.Error(t, err)
}

func TestUpdateHeading(t *testing.T) {
	svc := NewHeadingService(newMockRepo())

	created, err := svc.Create(context.Background(), heading.HeadingRequest{Name: "Vehicles"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, heading.UpdateHeadingRequest{
		Name:    "Transport",
		Version: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Transport", updated.Name)
	assert.Equal(t, 1, updated.Version)

	_, err = svc.Update(context.Background(), created.ID, heading.UpdateHeadingRequest{
		Name:    "Stale",
		Version: 0,
	})
	assert.ErrorIs(t, err, heading.ErrVersionMismatch)
}

func TestDeleteHeading(t *testing.T) {
	svc := NewHeadingService(newMockRepo())

	created, err := svc.Create(context.Background(), heading.HeadingRequest{Name: "Vehicles"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), heading.ErrHeadingNotFound)
}
