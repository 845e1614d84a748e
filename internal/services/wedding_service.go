package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProfileExists   = errors.New("wedding profile already created for this user")
	ErrProfileNotFound = errors.New("wedding profile not found")
)

// WeddingFunctions are the selectable ceremony tags for a profile.
var WeddingFunctions = []string{"mehndi", "sangeet", "haldi", "ceremony", "reception"}

type WeddingService struct {
	db *gorm.DB
}

func NewWeddingService(db *gorm.DB) *WeddingService {
	return &WeddingService{db: db}
}

// Create builds the profile and assigns it to the onboarding user in one
// transaction, so a user never ends up with a dangling profile.
func (s *WeddingService) Create(userID uuid.UUID, req *dto.CreateWeddingProfileRequest) (*models.WeddingProfile, error) {
	if req.BrideName == "" || req.GroomName == "" {
		return nil, errors.New("bride_name and groom_name are required")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if user.WeddingProfileID != nil {
		return nil, ErrProfileExists
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("start_date must be YYYY-MM-DD")
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.New("end_date must be YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return nil, errors.New("end_date must not be before start_date")
	}

	functions, err := encodeFunctions(req.SelectedFunctions)
	if err != nil {
		return nil, err
	}

	profile := models.WeddingProfile{
		ID:                uuid.New(),
		BrideName:         req.BrideName,
		GroomName:         req.GroomName,
		StartDate:         startDate,
		EndDate:           endDate,
		Venue:             req.Venue,
		City:              req.City,
		State:             req.State,
		GuestCountTarget:  req.GuestCountTarget,
		BudgetTarget:      req.BudgetTarget,
		SelectedFunctions: functions,
		Theme:             req.Theme,
		IsComplete:        true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create wedding profile: %w", err)
		}
		return tx.Model(&user).Update("wedding_profile_id", profile.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *WeddingService) Get(weddingID uuid.UUID) (*models.WeddingProfile, error) {
	var profile models.WeddingProfile
	if err := s.db.First(&profile, "id = ?", weddingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load wedding profile: %w", err)
	}
	return &profile, nil
}

func (s *WeddingService) Update(weddingID uuid.UUID, req *dto.UpdateWeddingProfileRequest) (*models.WeddingProfile, error) {
	profile, err := s.Get(weddingID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.BrideName != nil {
		updates["bride_name"] = *req.BrideName
	}
	if req.GroomName != nil {
		updates["groom_name"] = *req.GroomName
	}
	if req.StartDate != nil {
		d, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return nil, errors.New("start_date must be YYYY-MM-DD")
		}
		updates["start_date"] = d
	}
	if req.EndDate != nil {
		d, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			return nil, errors.New("end_date must be YYYY-MM-DD")
		}
		updates["end_date"] = d
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.GuestCountTarget != nil {
		updates["guest_count_target"] = *req.GuestCountTarget
	}
	if req.BudgetTarget != nil {
		updates["budget_target"] = *req.BudgetTarget
	}
	if req.SelectedFunctions != nil {
		functions, err := encodeFunctions(*req.SelectedFunctions)
		if err != nil {
			return nil, err
		}
		updates["selected_functions"] = functions
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}
	if req.IsComplete != nil {
		updates["is_complete"] = *req.IsComplete
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update wedding profile: %w", err)
		}
	}

	return s.Get(weddingID)
}

func encodeFunctions(functions []string) (datatypes.JSON, error) {
	for _, f := range functions {
		if !validFunction(f) {
			return nil, fmt.Errorf("invalid wedding function %q", f)
		}
	}
	if functions == nil {
		functions = []string{}
	}
	b, err := json.Marshal(functions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selected functions: %w", err)
	}
	return datatypes.JSON(b), nil
}

func validFunction(f string) bool {
	for _, known := range WeddingFunctions {
		if known == f {
			return true
		}
	}
	return false
}
