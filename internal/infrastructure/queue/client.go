package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/shared"
)

// Client wraps asynq.Client and implements announcement.TaskEnqueuer.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddress string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddress}),
	}
}

func (c *Client) EnqueueMatchSuitableAds(ctx context.Context, announcementID uuid.UUID) error {
	payload, err := json.Marshal(announcement.MatchSuitableAdsPayload{
		AnnouncementID: announcementID,
	})
	if err != nil {
		return fmt.Errorf("marshal match_suitable_ads payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeMatchSuitableAds, payload)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueEmail),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue match_suitable_ads: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
