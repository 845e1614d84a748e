package vendors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrInvalidStatus  = errors.New("status must be one of active, contacted, booked, inactive")
)

type VendorService struct {
	db *gorm.DB
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

func (s *VendorService) List(weddingID uuid.UUID) ([]Vendor, error) {
	var vendors []Vendor
	err := s.db.Scopes(scope.ForWedding(weddingID)).
		Order("created_at ASC").
		Find(&vendors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (s *VendorService) Create(weddingID uuid.UUID, req CreateVendorRequest) (*Vendor, error) {
	if req.Name == "" || req.Category == "" {
		return nil, errors.New("name and category are required")
	}

	status := req.Status
	if status == "" {
		status = "contacted"
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	vendor := Vendor{
		ID:               uuid.New(),
		WeddingProfileID: weddingID,
		Name:             req.Name,
		Category:         req.Category,
		Contact:          req.Contact,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		Website:          req.Website,
		ContractRef:      req.ContractRef,
		Notes:            req.Notes,
		Status:           status,
	}

	if err := s.db.Create(&vendor).Error; err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return &vendor, nil
}

func (s *VendorService) Update(weddingID uuid.UUID, vendorID uuid.UUID, req UpdateVendorRequest) (*Vendor, error) {
	var vendor Vendor
	err := s.db.Scopes(scope.ForWedding(weddingID)).First(&vendor, "id = ?", vendorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to load vendor: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, errors.New("category cannot be empty")
		}
		updates["category"] = *req.Category
	}
	if req.Contact != nil {
		updates["contact"] = *req.Contact
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.ContractRef != nil {
		updates["contract_ref"] = *req.ContractRef
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&vendor).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update vendor: %w", err)
		}
	}
	return &vendor, nil
}

func (s *VendorService) Delete(weddingID uuid.UUID, vendorID uuid.UUID) error {
	result := s.db.Scopes(scope.ForWedding(weddingID)).Where("id = ?", vendorID).Delete(&Vendor{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete vendor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVendorNotFound
	}
	return nil
}

func validStatus(status string) bool {
	for _, s := range VendorStatuses {
		if s == status {
			return true
		}
	}
	return false
}
