package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard-backend/internal/domains/heading"
)

type stubService struct {
	headings map[uuid.UUID]*heading.HeadingResponse
	names    map[string]bool
}

func newStubService() *stubService {
	return &stubService{
		headings: make(map[uuid.UUID]*heading.HeadingResponse),
		names:    make(map[string]bool),
	}
}

func (s *stubService) Create(ctx context.Context, req heading.HeadingRequest) (*heading.HeadingResponse, error) {
	if s.names[req.Name] {
		return nil, heading.ErrDuplicateName
	}
	resp := &heading.HeadingResponse{ID: uuid.New(), Name: req.Name}
	s.headings[resp.ID] = resp
	s.names[req.Name] = true
	return resp, nil
}

func (s *stubService) Get(ctx context.Context, id uuid.UUID) (*heading.HeadingResponse, error) {
	h, ok := s.headings[id]
	if !ok {
		return nil, heading.ErrHeadingNotFound
	}
	return h, nil
}

func (s *stubService) GetAll(ctx context.Context) ([]heading.HeadingResponse, error) {
	out := make([]heading.HeadingResponse, 0, len(s.headings))
	for _, h := range s.headings {
		out = append(out, *h)
	}
	return out, nil
}

func (s *stubService) Update(ctx context.Context, id uuid.UUID, req heading.UpdateHeadingRequest) (*heading.HeadingResponse, error) {
	h, ok := s.headings[id]
	if !ok {
		return nil, heading.ErrHeadingNotFound
	}
	h.Name = req.Name
	h.Version++
	return h, nil
}

func (s *stubService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.headings[id]; !ok {
		return heading.ErrHeadingNotFound
	}
	delete(s.headings, id)
	return nil
}

func setupRouter(svc heading.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHeadingHandler(svc)
	r := gin.New()
	r.POST("/headings", h.Create)
	r.GET("/headings", h.GetAll)
	r.GET("/headings/:id", h.GetByID)
	r.PUT("/headings/:id", h.Update)
	r.DELETE("/headings/:id", h.Delete)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateHeadingEndpoint(t *testing.T) {
	r := setupRouter(newStubService())

	w, env := doRequest(t, r, http.MethodPost, "/headings", gin.H{"name": "Vehicles"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var created heading.HeadingResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Vehicles", created.Name)
}

func TestCreateHeadingValidationError(t *testing.T) {
	r := setupRouter(newStubService())

	w, env := doRequest(t, r, http.MethodPost, "/headings", gin.H{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestCreateHeadingConflict(t *testing.T) {
	r := setupRouter(newStubService())

	w, _ := doRequest(t, r, http.MethodPost, "/headings", gin.H{"name": "Vehicles"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doRequest(t, r, http.MethodPost, "/headings", gin.H{"name": "Vehicles"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func TestGetHeadingNotFound(t *testing.T) {
	r := setupRouter(newStubService())

	w, env := doRequest(t, r, http.MethodGet, "/headings/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestGetHeadingBadID(t *testing.T) {
	r := setupRouter(newStubService())

	w, _ := doRequest(t, r, http.MethodGet, "/headings/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteHeadingEndpoint(t *testing.T) {
	svc := newStubService()
	r := setupRouter(svc)

	created, err := svc.Create(context.Background(), heading.HeadingRequest{Name: "Vehicles"})
	require.NoError(t, err)

	w, env := doRequest(t, r, http.MethodDelete, "/headings/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, _ = doRequest(t, r, http.MethodDelete, "/headings/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
