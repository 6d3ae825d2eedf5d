package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adboard-backend/internal/domains/heading"
	"adboard-backend/internal/shared/response"
	"adboard-backend/pkg/logger"
)

type HeadingHandler struct {
	service heading.Service
}

func NewHeadingHandler(service heading.Service) *HeadingHandler {
	return &HeadingHandler{service: service}
}

// Create handles POST /headings
func (h *HeadingHandler) Create(c *gin.Context) {
	var req heading.HeadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Heading created", created)
}

// GetAll handles GET /headings
func (h *HeadingHandler) GetAll(c *gin.Context) {
	headings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", headings)
}

// GetByID handles GET /headings/:id
func (h *HeadingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid heading id")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", found)
}

// Update handles PUT /headings/:id
func (h *HeadingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid heading id")
		return
	}

	var req heading.UpdateHeadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Heading updated", updated)
}

// Delete handles DELETE /headings/:id.
// The heading's announcements are removed first, then the heading.
func (h *HeadingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid heading id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Heading deleted", nil)
}

func (h *HeadingHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, heading.ErrHeadingNotFound):
		response.NotFound(c, "heading not found")
	case errors.Is(err, heading.ErrDuplicateName):
		response.Conflict(c, "heading name already exists")
	case errors.Is(err, heading.ErrVersionMismatch):
		response.Conflict(c, "heading was modified by another request")
	default:
		logger.Error("heading handler: unexpected error", err)
		response.InternalServerError(c, "internal server error")
	}
}
