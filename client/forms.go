package client

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var ErrInvalidDueDate = errors.New("due date must be a valid YYYY-MM-DD date")

// ObjectiveForm is the create/edit form payload. Validation runs before
// anything is submitted, so a rejected form never reaches the backend.
type ObjectiveForm struct {
	Title       string `validate:"required,min=5"`
	Description string `validate:"required,min=10"`
	KPI         string `validate:"required,min=3"`
	Weight      int    `validate:"required,min=1,max=100"`
	Target      string `validate:"required"`
	DueDate     string `validate:"required"`
	Status      string `validate:"required,oneof='On Track' 'At Risk' 'Delayed' 'Completed'"`
}

func (f ObjectiveForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", f.DueDate); err != nil {
		return ErrInvalidDueDate
	}
	return nil
}

// ProgressForm is the progress-update form payload. The note travels with
// the update and lands in the objective's history.
type ProgressForm struct {
	Progress int    `validate:"min=0,max=100"`
	Status   string `validate:"required,oneof='On Track' 'At Risk' 'Delayed' 'Completed'"`
	Note     string `validate:"omitempty,max=2000"`
}

func (f ProgressForm) Validate() error { return validate.Struct(f) }
