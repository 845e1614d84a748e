package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the authenticated principal. WeddingProfileID stays nil until
// onboarding creates a profile for this user.
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username         string         `gorm:"not null;size:100;uniqueIndex" json:"username"`
	Password         string         `gorm:"not null" json:"-"`
	Name             string         `gorm:"size:255" json:"name"`
	Role             string         `gorm:"size:20;default:'bride'" json:"role"`
	WeddingProfileID *uuid.UUID     `gorm:"type:uuid;index" json:"wedding_profile_id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
