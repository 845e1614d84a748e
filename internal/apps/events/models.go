package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is one function of a multi-day wedding (sangeet, ceremony,
// reception, ...).
type Event struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WeddingProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"wedding_profile_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description"`
	Date             time.Time      `json:"date"`
	Time             string         `gorm:"size:50" json:"time"`
	Location         string         `gorm:"size:255" json:"location"`
	GuestCount       int            `gorm:"default:0" json:"guest_count"`
	Icon             string         `gorm:"size:50" json:"icon"`
	Color            string         `gorm:"size:20" json:"color"`
	Progress         int            `gorm:"default:0" json:"progress"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// --- DTOs ---

type CreateEventRequest struct {
	WeddingProfileID *uuid.UUID `json:"wedding_profile_id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Location         string     `json:"location"`
	GuestCount       int        `json:"guest_count"`
	Icon             string     `json:"icon"`
	Color            string     `json:"color"`
	Progress         int        `json:"progress"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	GuestCount  *int    `json:"guest_count"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Progress    *int    `json:"progress"`
}

type EventListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

// ClampProgress bounds a progress percentage to [0, 100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
