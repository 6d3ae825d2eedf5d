package main

import (
	"github.com/hibiken/asynq"

	announcementJob "adboard-backend/internal/domains/announcement/job"
	"adboard-backend/internal/infrastructure/email"
	"adboard-backend/internal/shared"
	"adboard-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Email side effect after an announcement is published
	matchSuitableAds *announcementJob.MatchSuitableAdsHandler

	// Maintenance handlers
	purgeInactive *announcementJob.PurgeInactiveHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	emailSvc := email.NewDevEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)

	return &HandlerRegistry{
		matchSuitableAds: announcementJob.NewMatchSuitableAdsHandler(
			c.AnnouncementRepo,
			c.SuitableAdService,
			emailSvc,
		),
		purgeInactive: announcementJob.NewPurgeInactiveHandler(c.AnnouncementService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeMatchSuitableAds, h.matchSuitableAds.ProcessTask)
	mux.HandleFunc(shared.TypePurgeInactive, h.purgeInactive.ProcessTask)
}
