package objective

import (
	"errors"

	util "github.com/example/perfdash/internal/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var ErrDueDateRequired = errors.New("due date is required")

// CreateObjectiveDTO carries everything the create form collects. Progress is
// deliberately absent: new objectives always start at 0.
type CreateObjectiveDTO struct {
	Title       string        `json:"title" validate:"required,min=5"`
	Description string        `json:"description" validate:"required,min=10"`
	KPI         string        `json:"kpi" validate:"required,min=3"`
	Weight      int           `json:"weight" validate:"required,min=1,max=100"`
	Target      string        `json:"target" validate:"required"`
	DueDate     util.DateOnly `json:"due_date"`
	Status      Status        `json:"status" validate:"required,oneof='On Track' 'At Risk' 'Delayed' 'Completed'"`
}

func (d CreateObjectiveDTO) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	if d.DueDate.IsZero() {
		return ErrDueDateRequired
	}
	return nil
}

// UpdateObjectiveDTO is a partial edit: only non-nil fields persist. Progress
// is not editable here; it moves through the progress-update path.
type UpdateObjectiveDTO struct {
	Title       *string        `json:"title" validate:"omitempty,min=5"`
	Description *string        `json:"description" validate:"omitempty,min=10"`
	KPI         *string        `json:"kpi" validate:"omitempty,min=3"`
	Weight      *int           `json:"weight" validate:"omitempty,min=1,max=100"`
	Target      *string        `json:"target" validate:"omitempty,min=1"`
	DueDate     *util.DateOnly `json:"due_date"`
	Status      *Status        `json:"status" validate:"omitempty,oneof='On Track' 'At Risk' 'Delayed' 'Completed'"`
}

func (d UpdateObjectiveDTO) Validate() error { return validate.Struct(d) }

type ProgressUpdateDTO struct {
	Progress int    `json:"progress" validate:"min=0,max=100"`
	Status   Status `json:"status" validate:"required,oneof='On Track' 'At Risk' 'Delayed' 'Completed'"`
	Note     string `json:"note" validate:"omitempty,max=2000"`
}

func (d ProgressUpdateDTO) Validate() error { return validate.Struct(d) }

// Filters constrain and order a listing. Zero value means "everything,
// newest first".
type Filters struct {
	Status    *Status
	DueAfter  *util.DateOnly
	DueBefore *util.DateOnly
	SortBy    string
	SortOrder string
}

// Stats are derived from the caller's current objectives. "In progress"
// deliberately counts every non-completed status, At Risk and Delayed
// included.
type Stats struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	InProgress  int `json:"in_progress"`
	AtRisk      int `json:"at_risk"`
	Delayed     int `json:"delayed"`
	WeightTotal int `json:"weight_total"`
	AvgProgress int `json:"avg_progress"`
	// Score is the weight-adjusted completion percentage across all
	// objectives, the number the rating scale bands.
	Score int `json:"score"`
}
