package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"adboard-backend/internal/config"
	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/shared"
	"adboard-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerPurgeInactiveAnnouncementsJob()
}

// ================================================
// JOB 1: Purge Inactive Announcements (Daily at 3 AM)
// ================================================
func (s *Scheduler) registerPurgeInactiveAnnouncementsJob() error {
	payload, err := json.Marshal(announcement.PurgeInactivePayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeInactive, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.PurgeInactiveCron,
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeInactiveAnnouncements job", err)
		return err
	}

	logger.Info("✓ Registered PurgeInactiveAnnouncements", map[string]interface{}{
		"cron": s.jobConfig.PurgeInactiveCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
