package utils

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"valid values kept", 2, 50, 2, 50},
		{"limit capped at 100", 1, 500, 1, 100},
		{"limit exactly 100", 1, 100, 1, 100},
		{"negative limit", 1, -1, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestUnmarshalTask(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	task := asynq.NewTask("test:task", []byte(`{"id":"abc"}`))

	var p payload
	require.NoError(t, UnmarshalTask(task, &p))
	assert.Equal(t, "abc", p.ID)

	// Empty payload leaves dest zero-valued
	var empty payload
	require.NoError(t, UnmarshalTask(asynq.NewTask("test:task", nil), &empty))
	assert.Empty(t, empty.ID)

	// Malformed payload errors
	var bad payload
	assert.Error(t, UnmarshalTask(asynq.NewTask("test:task", []byte("{")), &bad))
}
