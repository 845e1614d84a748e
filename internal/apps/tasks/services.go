package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("status must be one of todo, inprogress, done")
)

const dueDateLayout = "2006-01-02"

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// List returns the full in-tenant collection in insertion order; board
// filtering and partitioning happen in DeriveBoard, not in SQL.
func (s *TaskService) List(weddingID uuid.UUID) ([]Task, error) {
	var tasks []Task
	err := s.db.Scopes(scope.ForWedding(weddingID)).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Create(weddingID uuid.UUID, req CreateTaskRequest) (*Task, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	status := req.Status
	if status == "" {
		status = "todo"
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := Task{
		ID:               uuid.New(),
		WeddingProfileID: weddingID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Status:           status,
		AssignedTo:       req.AssignedTo,
		DueDate:          dueDate,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *TaskService) Update(weddingID uuid.UUID, taskID uuid.UUID, req UpdateTaskRequest) (*Task, error) {
	var task Task
	err := s.db.Scopes(scope.ForWedding(weddingID)).First(&task, "id = ?", taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.New("title cannot be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		updates["due_date"] = dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(&task).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}
	return &task, nil
}

func (s *TaskService) Delete(weddingID uuid.UUID, taskID uuid.UUID) error {
	result := s.db.Scopes(scope.ForWedding(weddingID)).Where("id = ?", taskID).Delete(&Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func validStatus(status string) bool {
	for _, s := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dueDateLayout, *raw)
	if err != nil {
		return nil, errors.New("due_date must be YYYY-MM-DD")
	}
	return &d, nil
}
