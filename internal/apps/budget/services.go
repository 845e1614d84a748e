package budget

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound   = errors.New("budget item not found")
	ErrInvalidStatus  = errors.New("status must be one of pending, paid, partial, cancelled")
	ErrNegativeAmount = errors.New("amounts must not be negative")
)

type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

func (s *BudgetService) List(weddingID uuid.UUID) ([]BudgetItem, error) {
	var items []BudgetItem
	err := s.db.Scopes(scope.ForWedding(weddingID)).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	return items, nil
}

// Totals sums the collection for the list response. Unset optional
// amounts contribute zero.
func Totals(items []BudgetItem) (estimated, actual, paid float64) {
	for _, item := range items {
		estimated += item.EstimatedAmount
		if item.ActualAmount != nil {
			actual += *item.ActualAmount
		}
		if item.PaidAmount != nil {
			paid += *item.PaidAmount
		}
	}
	return estimated, actual, paid
}

func (s *BudgetService) Create(weddingID uuid.UUID, req CreateBudgetItemRequest) (*BudgetItem, error) {
	if req.Category == "" {
		return nil, errors.New("category is required")
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	if req.EstimatedAmount < 0 ||
		(req.ActualAmount != nil && *req.ActualAmount < 0) ||
		(req.PaidAmount != nil && *req.PaidAmount < 0) {
		return nil, ErrNegativeAmount
	}

	item := BudgetItem{
		ID:               uuid.New(),
		WeddingProfileID: weddingID,
		Category:         req.Category,
		Vendor:           req.Vendor,
		Description:      req.Description,
		EstimatedAmount:  req.EstimatedAmount,
		ActualAmount:     req.ActualAmount,
		PaidAmount:       req.PaidAmount,
		Status:           status,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create budget item: %w", err)
	}
	return &item, nil
}

func (s *BudgetService) Update(weddingID uuid.UUID, itemID uuid.UUID, req UpdateBudgetItemRequest) (*BudgetItem, error) {
	var item BudgetItem
	err := s.db.Scopes(scope.ForWedding(weddingID)).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load budget item: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, errors.New("category cannot be empty")
		}
		updates["category"] = *req.Category
	}
	if req.Vendor != nil {
		updates["vendor"] = *req.Vendor
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EstimatedAmount != nil {
		if *req.EstimatedAmount < 0 {
			return nil, ErrNegativeAmount
		}
		updates["estimated_amount"] = *req.EstimatedAmount
	}
	if req.ActualAmount != nil {
		if *req.ActualAmount < 0 {
			return nil, ErrNegativeAmount
		}
		updates["actual_amount"] = *req.ActualAmount
	}
	if req.PaidAmount != nil {
		if *req.PaidAmount < 0 {
			return nil, ErrNegativeAmount
		}
		updates["paid_amount"] = *req.PaidAmount
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update budget item: %w", err)
		}
	}
	return &item, nil
}

func (s *BudgetService) Delete(weddingID uuid.UUID, itemID uuid.UUID) error {
	result := s.db.Scopes(scope.ForWedding(weddingID)).Where("id = ?", itemID).Delete(&BudgetItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func validStatus(status string) bool {
	for _, s := range BudgetStatuses {
		if s == status {
			return true
		}
	}
	return false
}
