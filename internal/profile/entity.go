package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the identity metadata shown on the dashboard. Every field is
// independently optional; the row itself appears on first update (upsert).
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName  *string   `gorm:"column:first_name" json:"first_name"`
	LastName   *string   `gorm:"column:last_name" json:"last_name"`
	Position   *string   `json:"position"`
	Department *string   `json:"department"`
	Manager    *string   `json:"manager"`
	AvatarURL  *string   `gorm:"column:avatar_url" json:"avatar_url"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
