package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/shared/middleware"
	"adboard-backend/internal/shared/response"
	"adboard-backend/pkg/logger"
)

type AnnouncementHandler struct {
	service announcement.Service
}

func NewAnnouncementHandler(service announcement.Service) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// Create handles POST /announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req announcement.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/announcements/"+created.ID.String())
	response.Success(c, http.StatusCreated, "Announcement created", created)
}

// List handles GET /announcements?page=&limit=
func (h *AnnouncementHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// GetByID handles GET /announcements/:id
func (h *AnnouncementHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid announcement id")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", found)
}

// Update handles PUT /announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid announcement id")
		return
	}

	var req announcement.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Announcement updated", updated)
}

// Delete handles DELETE /announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	authorID, ok := middleware.GetAuthenticatedAuthorID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid announcement id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, authorID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Announcement deleted", nil)
}

// DeleteByHeading handles DELETE /headings/:id/announcements
func (h *AnnouncementHandler) DeleteByHeading(c *gin.Context) {
	headingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid heading id")
		return
	}

	deleted, err := h.service.DeleteByHeading(c.Request.Context(), headingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Announcements deleted", gin.H{"deleted": deleted})
}

// PurgeInactive handles DELETE /announcements/inactive (admin only).
// Removes rows flagged inactive; active rows are never touched.
func (h *AnnouncementHandler) PurgeInactive(c *gin.Context) {
	deleted, err := h.service.PurgeInactive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Inactive announcements purged", gin.H{"deleted": deleted})
}

func (h *AnnouncementHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		response.NotFound(c, "announcement not found")
	case errors.Is(err, announcement.ErrHeadingNotFound):
		response.BadRequest(c, "heading does not exist")
	case errors.Is(err, announcement.ErrNotOwner):
		response.Forbidden(c, "announcement belongs to another author")
	case errors.Is(err, announcement.ErrVersionMismatch):
		response.Conflict(c, "announcement was modified by another request")
	default:
		logger.Error("announcement handler: unexpected error", err)
		response.InternalServerError(c, "internal server error")
	}
}
