package budget

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BudgetItem struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WeddingProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"wedding_profile_id"`
	Category         string         `gorm:"size:100;not null" json:"category"`
	Vendor           string         `gorm:"size:255" json:"vendor"`
	Description      string         `gorm:"type:text" json:"description"`
	EstimatedAmount  float64        `gorm:"not null;default:0" json:"estimated_amount"`
	ActualAmount     *float64       `json:"actual_amount"`
	PaidAmount       *float64       `json:"paid_amount"`
	Status           string         `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

var BudgetStatuses = []string{"pending", "paid", "partial", "cancelled"}

// --- DTOs ---

type CreateBudgetItemRequest struct {
	WeddingProfileID *uuid.UUID `json:"wedding_profile_id"`
	Category         string     `json:"category"`
	Vendor           string     `json:"vendor"`
	Description      string     `json:"description"`
	EstimatedAmount  float64    `json:"estimated_amount"`
	ActualAmount     *float64   `json:"actual_amount"`
	PaidAmount       *float64   `json:"paid_amount"`
	Status           string     `json:"status"`
}

type UpdateBudgetItemRequest struct {
	Category        *string  `json:"category"`
	Vendor          *string  `json:"vendor"`
	Description     *string  `json:"description"`
	EstimatedAmount *float64 `json:"estimated_amount"`
	ActualAmount    *float64 `json:"actual_amount"`
	PaidAmount      *float64 `json:"paid_amount"`
	Status          *string  `json:"status"`
}

type BudgetListResponse struct {
	Items          []BudgetItem `json:"items"`
	Total          int          `json:"total"`
	EstimatedTotal float64      `json:"estimated_total"`
	ActualTotal    float64      `json:"actual_total"`
	PaidTotal      float64      `json:"paid_total"`
}
