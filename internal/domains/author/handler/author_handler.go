package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adboard-backend/internal/domains/author"
	"adboard-backend/internal/shared/middleware"
	"adboard-backend/internal/shared/response"
	"adboard-backend/pkg/logger"
)

// AuthorHandler translates HTTP requests into author.Service calls.
// Stateless; holds only dependencies.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Register handles POST /auth/register
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/authors/"+dto.ID.String())
	response.Success(c, http.StatusCreated, "Author registered successfully", dto)
}

// Login handles POST /auth/login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	loginResp, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", loginResp)
}

// List handles GET /authors (admin only)
func (h *AuthorHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", dtos)
}

// GetProfile handles GET /authors/me
func (h *AuthorHandler) GetProfile(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	dto, err := h.service.Get(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", dto)
}

// UpdateProfile handles PUT /authors/me
func (h *AuthorHandler) UpdateProfile(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req author.UpdateRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	dto, err := h.service.Update(c.Request.Context(), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author updated", dto)
}

// DeleteProfile handles DELETE /authors/me.
// Cascades to announcements, suitable ads and the role association.
func (h *AuthorHandler) DeleteProfile(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), authorID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author deleted", nil)
}

// DeleteAnnouncements handles DELETE /authors/me/announcements
func (h *AuthorHandler) DeleteAnnouncements(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	deleted, err := h.service.DeleteAnnouncementsByAuthor(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Announcements deleted", gin.H{"deleted": deleted})
}

// bindAndValidate parses the JSON body and runs DTO validation.
// Writes the error response itself; callers just return on false.
func (h *AuthorHandler) bindAndValidate(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "invalid request body")
		return false
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err.Error())
		return false
	}

	return true
}

// handleError maps domain errors to HTTP status codes
func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, "author not found")
	case errors.Is(err, author.ErrDuplicateName):
		response.Conflict(c, "author name already taken")
	case errors.Is(err, author.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid name or password")
	case errors.Is(err, author.ErrVersionMismatch):
		response.Conflict(c, "author was modified by another request")
	default:
		logger.Error("author handler: unexpected error", err)
		response.InternalServerError(c, "internal server error")
	}
}
