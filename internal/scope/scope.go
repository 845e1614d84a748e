package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForWedding returns a GORM scope that filters by wedding profile id.
// Applied to every tenant-resource query, reads and writes alike.
func ForWedding(weddingID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("wedding_profile_id = ?", weddingID)
	}
}
