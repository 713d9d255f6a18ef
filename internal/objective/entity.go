package objective

import (
	"time"

	"github.com/example/perfdash/internal/user"
	util "github.com/example/perfdash/internal/utils"
	"github.com/google/uuid"
)

type Objective struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	KPI         string        `gorm:"column:kpi;not null" json:"kpi"`
	Weight      int           `gorm:"not null" json:"weight"`
	Target      string        `gorm:"not null" json:"target"`
	Progress    int           `gorm:"not null;default:0" json:"progress"`
	Status      Status        `gorm:"not null" json:"status"`
	DueDate     util.DateOnly `gorm:"column:due_date;type:date" json:"due_date"`
	UserID      uuid.UUID     `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	User        user.User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProgressUpdate is one entry of an objective's progress history, including
// the free-text note the update form collects.
type ProgressUpdate struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ObjectiveID uuid.UUID `gorm:"column:objective_id;type:uuid;not null;index" json:"objective_id"`
	Progress    int       `gorm:"not null" json:"progress"`
	Status      Status    `gorm:"not null" json:"status"`
	Note        string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProgressUpdate) TableName() string {
	return "objective_progress_updates"
}
