package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

const dateLayout = "2006-01-02"

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) List(weddingID uuid.UUID) ([]Event, error) {
	var events []Event
	err := s.db.Scopes(scope.ForWedding(weddingID)).
		Order("date ASC, created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Create(weddingID uuid.UUID, req CreateEventRequest) (*Event, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	event := Event{
		ID:               uuid.New(),
		WeddingProfileID: weddingID,
		Name:             req.Name,
		Description:      req.Description,
		Date:             date,
		Time:             req.Time,
		Location:         req.Location,
		GuestCount:       req.GuestCount,
		Icon:             req.Icon,
		Color:            req.Color,
		Progress:         ClampProgress(req.Progress),
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

func (s *EventService) Update(weddingID uuid.UUID, eventID uuid.UUID, req UpdateEventRequest) (*Event, error) {
	var event Event
	err := s.db.Scopes(scope.ForWedding(weddingID)).First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, errors.New("date must be YYYY-MM-DD")
		}
		updates["date"] = date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.GuestCount != nil {
		updates["guest_count"] = *req.GuestCount
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Progress != nil {
		updates["progress"] = ClampProgress(*req.Progress)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&event).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update event: %w", err)
		}
	}
	return &event, nil
}

func (s *EventService) Delete(weddingID uuid.UUID, eventID uuid.UUID) error {
	result := s.db.Scopes(scope.ForWedding(weddingID)).Where("id = ?", eventID).Delete(&Event{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
