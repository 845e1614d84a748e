package vendors

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vendor struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WeddingProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"wedding_profile_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Category         string         `gorm:"size:100;not null" json:"category"`
	Contact          string         `gorm:"size:255" json:"contact"`
	Email            string         `gorm:"size:255" json:"email"`
	Phone            string         `gorm:"size:50" json:"phone"`
	Address          string         `gorm:"type:text" json:"address"`
	Website          string         `gorm:"size:255" json:"website"`
	ContractRef      string         `gorm:"size:255" json:"contract_ref"`
	Notes            string         `gorm:"type:text" json:"notes"`
	Status           string         `gorm:"size:20;default:'contacted'" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

var VendorStatuses = []string{"active", "contacted", "booked", "inactive"}

// --- DTOs ---

type CreateVendorRequest struct {
	WeddingProfileID *uuid.UUID `json:"wedding_profile_id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Contact          string     `json:"contact"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	Website          string     `json:"website"`
	ContractRef      string     `json:"contract_ref"`
	Notes            string     `json:"notes"`
	Status           string     `json:"status"`
}

type UpdateVendorRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Contact     *string `json:"contact"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Website     *string `json:"website"`
	ContractRef *string `json:"contract_ref"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"`
}

type VendorListResponse struct {
	Vendors []Vendor `json:"vendors"`
	Total   int      `json:"total"`
}
