package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeddingProfile is the tenant root. Every per-wedding resource row
// carries this profile's id and is only reachable by users assigned
// to it.
type WeddingProfile struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BrideName         string         `gorm:"size:255;not null" json:"bride_name"`
	GroomName         string         `gorm:"size:255;not null" json:"groom_name"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           time.Time      `json:"end_date"`
	Venue             string         `gorm:"size:255" json:"venue"`
	City              string         `gorm:"size:100" json:"city"`
	State             string         `gorm:"size:100" json:"state"`
	GuestCountTarget  int            `gorm:"default:0" json:"guest_count_target"`
	BudgetTarget      float64        `gorm:"default:0" json:"budget_target"`
	SelectedFunctions datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"selected_functions"`
	Theme             string         `gorm:"size:100" json:"theme"`
	IsComplete        bool           `gorm:"default:false" json:"is_complete"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
