package suitablead

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SuitableAdRequest struct {
	Category  string  `json:"category" binding:"required"`
	Title     string  `json:"title"`
	PriceFrom float64 `json:"price_from"`
	PriceTo   float64 `json:"price_to"`
	Email     string  `json:"email" binding:"required"`
}

func (r SuitableAdRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.PriceFrom, validation.Min(0.0)),
		validation.Field(&r.PriceTo,
			validation.Min(r.PriceFrom).Error("price_to must not be below price_from"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

type UpdateSuitableAdRequest struct {
	SuitableAdRequest
	Version int `json:"version"`
}

func (r UpdateSuitableAdRequest) Validate() error {
	if err := r.SuitableAdRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Version, validation.Min(0)),
	)
}
