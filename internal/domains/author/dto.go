package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// AuthorDTO is the transport representation of an Author.
// Never carries the password hash.
type AuthorDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Emails    []Email   `json:"emails,omitempty"`
	Phones    []Phone   `json:"phones,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AddressInput struct {
	City   string `json:"city"`
	Street string `json:"street"`
}

// RegisterRequest creates an author together with its contact records
type RegisterRequest struct {
	Name      string         `json:"name" binding:"required"`
	Password  string         `json:"password" binding:"required"`
	Emails    []string       `json:"emails,omitempty"`
	Phones    []string       `json:"phones,omitempty"`
	Addresses []AddressInput `json:"addresses,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 64),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Emails,
			validation.Each(is.Email.Error("invalid email format")),
		),
		validation.Field(&r.Phones,
			validation.Each(validation.Length(5, 20)),
		),
	)
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the JWT pair
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Author       AuthorDTO `json:"author"`
}

// UpdateRequest replaces the author's profile fields and contact
// collections wholesale; omitted collections come back empty.
type UpdateRequest struct {
	Name      string         `json:"name" binding:"required"`
	Version   int            `json:"version"`
	Emails    []string       `json:"emails,omitempty"`
	Phones    []string       `json:"phones,omitempty"`
	Addresses []AddressInput `json:"addresses,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 64),
		),
		validation.Field(&r.Version, validation.Min(0)),
		validation.Field(&r.Emails,
			validation.Each(is.Email.Error("invalid email format")),
		),
	)
}
