package announcement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Announcement is a published ad. It always references an existing
// heading and the author who published it. Inactive announcements are
// retained until the explicit purge removes them.
type Announcement struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Text        string          `json:"text" db:"text"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Active      bool            `json:"active" db:"active"`
	HeadingID   uuid.UUID       `json:"heading_id" db:"heading_id"`
	AuthorID    uuid.UUID       `json:"author_id" db:"author_id"`
	Version     int             `json:"version" db:"version"`
	PublishedAt time.Time       `json:"published_at" db:"published_at"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	// Populated by the JOIN in read queries, not a column.
	HeadingName string `json:"heading_name,omitempty" db:"-"`
}

// MatchSuitableAdsPayload is the asynq task payload enqueued after an
// announcement is created. The worker re-reads the announcement so the
// payload stays minimal.
type MatchSuitableAdsPayload struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
}

// PurgeInactivePayload is the (empty) payload of the scheduled purge.
type PurgeInactivePayload struct{}
