package guests

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guest struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WeddingProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"wedding_profile_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Email            string         `gorm:"size:255" json:"email"`
	Phone            string         `gorm:"size:50" json:"phone"`
	Side             string         `gorm:"size:100" json:"side"`
	RSVPStatus       string         `gorm:"size:20;default:'pending'" json:"rsvp_status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

var RSVPStatuses = []string{"pending", "confirmed", "declined"}

// --- DTOs ---

type CreateGuestRequest struct {
	WeddingProfileID *uuid.UUID `json:"wedding_profile_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Side             string     `json:"side"`
	RSVPStatus       string     `json:"rsvp_status"`
}

type UpdateGuestRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Side       *string `json:"side"`
	RSVPStatus *string `json:"rsvp_status"`
}

type GuestListResponse struct {
	Guests     []Guest        `json:"guests"`
	Total      int            `json:"total"`
	SideCounts map[string]int `json:"side_counts"`
	RSVPCounts map[string]int `json:"rsvp_counts"`
}

type BulkCreateRequest struct {
	WeddingProfileID *uuid.UUID           `json:"wedding_profile_id"`
	Guests           []CreateGuestRequest `json:"guests"`
}

type BulkItemResult struct {
	Index int    `json:"index"`
	Guest *Guest `json:"guest,omitempty"`
	Error string `json:"error,omitempty"`
}

type BulkCreateResponse struct {
	Created int              `json:"created"`
	Failed  int              `json:"failed"`
	Results []BulkItemResult `json:"results"`
}
