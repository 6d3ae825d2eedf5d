package author

import (
	"time"

	"github.com/google/uuid"
)

// Roles stored in the author_roles association table.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Author is an account that publishes announcements. Contact records
// (emails, phones, addresses) live in dependent tables and always
// back-reference their owning author.
type Author struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Version      int       `json:"version" db:"version"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Emails    []Email   `json:"emails"`
	Phones    []Phone   `json:"phones"`
	Addresses []Address `json:"addresses"`
}

type Email struct {
	ID       uuid.UUID `json:"id" db:"id"`
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`
	Email    string    `json:"email" db:"email"`
}

type Phone struct {
	ID       uuid.UUID `json:"id" db:"id"`
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`
	Number   string    `json:"number" db:"number"`
}

type Address struct {
	ID       uuid.UUID `json:"id" db:"id"`
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`
	City     string    `json:"city" db:"city"`
	Street   string    `json:"street" db:"street"`
}

// ToDTO strips credentials before the entity crosses the HTTP boundary
func (a *Author) ToDTO() AuthorDTO {
	return AuthorDTO{
		ID:        a.ID,
		Name:      a.Name,
		Role:      a.Role,
		Emails:    a.Emails,
		Phones:    a.Phones,
		Addresses: a.Addresses,
		CreatedAt: a.CreatedAt,
	}
}
