package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/domains/suitablead"
	"adboard-backend/internal/infrastructure/email"
	"adboard-backend/internal/shared/utils"
	"adboard-backend/pkg/logger"
)

// ================================================
// MATCH SUITABLE ADS JOB HANDLER
// ================================================

// MatchSuitableAdsHandler runs after an announcement is published and
// emails every subscriber whose suitable ad the announcement satisfies.
type MatchSuitableAdsHandler struct {
	announcementRepo  announcement.Repository
	suitableAdService suitablead.Service
	emailService      email.EmailService
}

func NewMatchSuitableAdsHandler(
	announcementRepo announcement.Repository,
	suitableAdService suitablead.Service,
	emailService email.EmailService,
) *MatchSuitableAdsHandler {
	return &MatchSuitableAdsHandler{
		announcementRepo:  announcementRepo,
		suitableAdService: suitableAdService,
		emailService:      emailService,
	}
}

func (h *MatchSuitableAdsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload announcement.MatchSuitableAdsPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		// Malformed payload never heals on retry, drop the task.
		logger.Error("Invalid match_suitable_ads payload", err)
		return nil
	}

	a, err := h.announcementRepo.GetByID(ctx, payload.AnnouncementID)
	if err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			// Deleted between enqueue and processing, nothing to match.
			logger.Info("Announcement gone before matching, skipping", map[string]interface{}{
				"announcement_id": payload.AnnouncementID.String(),
			})
			return nil
		}
		return fmt.Errorf("load announcement for matching: %w", err)
	}

	matches, err := h.suitableAdService.FindMatching(ctx, a.HeadingName, a.Title, a.Price)
	if err != nil {
		return fmt.Errorf("find matching suitable ads: %w", err)
	}

	logger.Info("Matching suitable ads for announcement", map[string]interface{}{
		"announcement_id": a.ID.String(),
		"heading":         a.HeadingName,
		"matches":         len(matches),
	})

	var failed int
	for _, m := range matches {
		data := email.SuitableAdMatchData{
			Email:          m.Email,
			AdTitle:        a.Title,
			Category:       a.HeadingName,
			Price:          a.Price.StringFixed(2),
			MatchedOnTitle: m.Title,
		}
		if err := h.emailService.SendSuitableAdMatch(ctx, data); err != nil {
			failed++
			logger.Error("Failed to send suitable ad match email", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("match suitable ads: %d of %d emails failed", failed, len(matches))
	}

	return nil
}
