package profile

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type UpdateProfileDTO struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Position   *string `json:"position" validate:"omitempty,max=150"`
	Department *string `json:"department" validate:"omitempty,max=150"`
	Manager    *string `json:"manager" validate:"omitempty,max=150"`
}

func (d UpdateProfileDTO) Validate() error { return validate.Struct(d) }
