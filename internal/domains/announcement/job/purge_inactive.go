package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/pkg/logger"
)

// ================================================
// PURGE INACTIVE ANNOUNCEMENTS JOB HANDLER
// ================================================

type PurgeInactiveHandler struct {
	announcementService announcement.Service
}

func NewPurgeInactiveHandler(announcementService announcement.Service) *PurgeInactiveHandler {
	return &PurgeInactiveHandler{announcementService: announcementService}
}

func (h *PurgeInactiveHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logger.Info("Starting PurgeInactiveAnnouncements job", nil)

	deleted, err := h.announcementService.PurgeInactive(ctx)
	if err != nil {
		return fmt.Errorf("purge inactive announcements: %w", err)
	}

	logger.Info("Completed PurgeInactiveAnnouncements job", map[string]interface{}{
		"deleted_count": deleted,
	})

	return nil
}
