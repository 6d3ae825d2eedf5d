package heading

import (
	"time"

	"github.com/google/uuid"
)

// Heading is the category grouping for announcements.
// Every announcement references exactly one heading.
type Heading struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Version   int       `json:"version" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type HeadingResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Version int       `json:"version"`
}

// ToResponse converts Heading to HeadingResponse
func (h *Heading) ToResponse() *HeadingResponse {
	return &HeadingResponse{
		ID:      h.ID,
		Name:    h.Name,
		Version: h.Version,
	}
}
