package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adboard-backend/internal/domains/suitablead"
	"adboard-backend/internal/shared/middleware"
	"adboard-backend/internal/shared/response"
)

type SuitableAdHandler struct {
	service suitablead.Service
}

func NewSuitableAdHandler(service suitablead.Service) *SuitableAdHandler {
	return &SuitableAdHandler{service: service}
}

// Create handles POST /api/v1/suitable-ads
func (h *SuitableAdHandler) Create(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req suitablead.SuitableAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Suitable ad created successfully", created)
}

// List handles GET /api/v1/suitable-ads and returns the caller's subscriptions.
func (h *SuitableAdHandler) List(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	ads, err := h.service.GetByAuthor(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Suitable ads retrieved successfully", ads)
}

// Update handles PUT /api/v1/suitable-ads/:id
func (h *SuitableAdHandler) Update(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid suitable ad ID")
		return
	}

	var req suitablead.UpdateSuitableAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Suitable ad updated successfully", updated)
}

// Delete handles DELETE /api/v1/suitable-ads/:id
func (h *SuitableAdHandler) Delete(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid suitable ad ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, authorID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Suitable ad deleted successfully", nil)
}

func (h *SuitableAdHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, suitablead.ErrSuitableAdNotFound):
		response.NotFound(c, "Suitable ad not found")
	case errors.Is(err, suitablead.ErrNotOwner):
		response.Forbidden(c, "You can only modify your own suitable ads")
	case errors.Is(err, suitablead.ErrVersionMismatch):
		response.Conflict(c, "Suitable ad was modified by another request, please retry")
	case strings.Contains(err.Error(), "validation failed"):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "Failed to process suitable ad request")
	}
}
