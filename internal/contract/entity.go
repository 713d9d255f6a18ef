package contract

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Contract is the performance-contract document: the agreed objectives frozen
// as terms plus the three-party signature state.
type Contract struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	Period     string         `gorm:"not null" json:"period"`
	Status     string         `gorm:"not null;default:'In Progress'" json:"status"`
	Terms      datatypes.JSON `gorm:"type:jsonb;not null" json:"terms"`
	Signatures datatypes.JSON `gorm:"type:jsonb;not null" json:"signatures"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type Term struct {
	Objective string `json:"objective"`
	KPI       string `json:"kpi"`
	Weight    int    `json:"weight"`
	Target    string `json:"target"`
	Timeline  string `json:"timeline"`
}

type Signatures struct {
	Employee   bool `json:"employee"`
	Supervisor bool `json:"supervisor"`
	Reviewer   bool `json:"reviewer"`
}

// ContractView is the document the dashboard renders: the stored contract
// plus live completion data.
type ContractView struct {
	Contract   *Contract  `json:"contract"`
	Terms      []Term     `json:"terms"`
	Signatures Signatures `json:"signatures"`
	Completion int        `json:"completion"`
	Rating     string     `json:"rating"`
}
