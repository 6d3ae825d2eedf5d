package announcement

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for announcements.
type Repository interface {
	Create(ctx context.Context, a *Announcement) (*Announcement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Announcement, error)

	// GetPage returns at most filter.Limit rows plus the total count.
	GetPage(ctx context.Context, filter ListFilter) ([]Announcement, int64, error)

	Update(ctx context.Context, a *Announcement, currentVersion int) (*Announcement, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByHeading removes every announcement under a heading and
	// reports the number of deleted rows.
	DeleteByHeading(ctx context.Context, headingID uuid.UUID) (int64, error)

	// PurgeInactive deletes all rows flagged inactive. Active rows are
	// never touched.
	PurgeInactive(ctx context.Context) (int64, error)
}

// Service is the business logic contract for announcements.
type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, req CreateRequest) (*AnnouncementResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*AnnouncementResponse, error)
	List(ctx context.Context, page, limit int) ([]AnnouncementResponse, int64, error)
	Update(ctx context.Context, id, authorID uuid.UUID, req UpdateRequest) (*AnnouncementResponse, error)
	Delete(ctx context.Context, id, authorID uuid.UUID) error
	DeleteByHeading(ctx context.Context, headingID uuid.UUID) (int64, error)
	PurgeInactive(ctx context.Context) (int64, error)
}

// TaskEnqueuer abstracts the queue client so the service can hand off
// the suitable-ad matching side effect without knowing about asynq.
type TaskEnqueuer interface {
	EnqueueMatchSuitableAds(ctx context.Context, announcementID uuid.UUID) error
}
