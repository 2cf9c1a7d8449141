package model

import "github.com/go-playground/validator/v10"

type PreviewEmailRequest struct {
	Template string `param:"template" validate:"required"`
}

func (r *PreviewEmailRequest) Validate() error {
	return validator.New().Struct(r)
}
