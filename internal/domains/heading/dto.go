package heading

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type HeadingRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r HeadingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
	)
}

type UpdateHeadingRequest struct {
	Name    string `json:"name" binding:"required"`
	Version int    `json:"version"`
}

func (r UpdateHeadingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Version, validation.Min(0)),
	)
}
