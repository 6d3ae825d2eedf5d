package announcement

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Title     string    `json:"title" binding:"required"`
	Text      string    `json:"text" binding:"required"`
	Price     float64   `json:"price"`
	HeadingID uuid.UUID `json:"heading_id" binding:"required"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 200),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 5000),
		),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.HeadingID, validation.Required, validation.NotIn(uuid.Nil)),
	)
}

type UpdateRequest struct {
	Title     string    `json:"title" binding:"required"`
	Text      string    `json:"text" binding:"required"`
	Price     float64   `json:"price"`
	Active    bool      `json:"active"`
	HeadingID uuid.UUID `json:"heading_id" binding:"required"`
	Version   int       `json:"version"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 200),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 5000),
		),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.HeadingID, validation.Required, validation.NotIn(uuid.Nil)),
		validation.Field(&r.Version, validation.Min(0)),
	)
}

type AnnouncementResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Text        string          `json:"text"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	HeadingID   uuid.UUID       `json:"heading_id"`
	HeadingName string          `json:"heading_name,omitempty"`
	AuthorID    uuid.UUID       `json:"author_id"`
	Version     int             `json:"version"`
	PublishedAt time.Time       `json:"published_at"`
}

// ToResponse converts Announcement to AnnouncementResponse
func (a *Announcement) ToResponse() *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Text:        a.Text,
		Price:       a.Price,
		Active:      a.Active,
		HeadingID:   a.HeadingID,
		HeadingName: a.HeadingName,
		AuthorID:    a.AuthorID,
		Version:     a.Version,
		PublishedAt: a.PublishedAt,
	}
}

// ListFilter carries sanitized pagination parameters
type ListFilter struct {
	Page  int
	Limit int
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
