package guests

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrInvalidRSVP   = errors.New("rsvp_status must be one of pending, confirmed, declined")
)

type GuestService struct {
	db *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db}
}

// List returns the full in-tenant collection in insertion order; view
// filtering and sorting happen in Derive, not in SQL.
func (s *GuestService) List(weddingID uuid.UUID) ([]Guest, error) {
	var guests []Guest
	err := s.db.Scopes(scope.ForWedding(weddingID)).
		Order("created_at ASC").
		Find(&guests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) Create(weddingID uuid.UUID, req CreateGuestRequest) (*Guest, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	status := req.RSVPStatus
	if status == "" {
		status = "pending"
	}
	if !validRSVP(status) {
		return nil, ErrInvalidRSVP
	}

	guest := Guest{
		ID:               uuid.New(),
		WeddingProfileID: weddingID,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Side:             req.Side,
		RSVPStatus:       status,
	}

	if err := s.db.Create(&guest).Error; err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return &guest, nil
}

// BulkCreate inserts guests one at a time; a failed item does not roll
// back earlier ones, matching the client's serial import behavior.
func (s *GuestService) BulkCreate(weddingID uuid.UUID, items []CreateGuestRequest) BulkCreateResponse {
	resp := BulkCreateResponse{Results: make([]BulkItemResult, 0, len(items))}
	for i, item := range items {
		guest, err := s.Create(weddingID, item)
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, BulkItemResult{Index: i, Error: err.Error()})
			continue
		}
		resp.Created++
		resp.Results = append(resp.Results, BulkItemResult{Index: i, Guest: guest})
	}
	return resp
}

func (s *GuestService) Update(weddingID uuid.UUID, guestID uuid.UUID, req UpdateGuestRequest) (*Guest, error) {
	var guest Guest
	err := s.db.Scopes(scope.ForWedding(weddingID)).First(&guest, "id = ?", guestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Side != nil {
		updates["side"] = *req.Side
	}
	if req.RSVPStatus != nil {
		if !validRSVP(*req.RSVPStatus) {
			return nil, ErrInvalidRSVP
		}
		updates["rsvp_status"] = *req.RSVPStatus
	}

	if len(updates) > 0 {
		if err := s.db.Model(&guest).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update guest: %w", err)
		}
	}
	return &guest, nil
}

func (s *GuestService) Delete(weddingID uuid.UUID, guestID uuid.UUID) error {
	result := s.db.Scopes(scope.ForWedding(weddingID)).Where("id = ?", guestID).Delete(&Guest{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete guest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

func validRSVP(status string) bool {
	for _, s := range RSVPStatuses {
		if s == status {
			return true
		}
	}
	return false
}
