package tasks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WeddingProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"wedding_profile_id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	Category         string         `gorm:"size:50" json:"category"`
	Status           string         `gorm:"size:20;default:'todo'" json:"status"`
	AssignedTo       string         `gorm:"size:50" json:"assigned_to"`
	DueDate          *time.Time     `json:"due_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

var (
	TaskStatuses   = []string{"todo", "inprogress", "done"}
	TaskCategories = []string{"venue", "catering", "decor", "photography", "attire", "music", "invitations", "logistics", "other"}
)

// --- DTOs ---

type CreateTaskRequest struct {
	WeddingProfileID *uuid.UUID `json:"wedding_profile_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Status           string     `json:"status"`
	AssignedTo       string     `json:"assigned_to"`
	DueDate          *string    `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
}

type BoardResponse struct {
	Todo            []Task `json:"todo"`
	InProgress      []Task `json:"inprogress"`
	Done            []Task `json:"done"`
	Total           int    `json:"total"`
	TodoCount       int    `json:"todo_count"`
	InProgressCount int    `json:"inprogress_count"`
	DoneCount       int    `json:"done_count"`
	CompletionRate  int    `json:"completion_rate"`
}
