package vendors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/richatenany98/wedding-planner/internal/config"
	"gorm.io/gorm"
)

type VendorsPlugin struct{}

func New() *VendorsPlugin {
	return &VendorsPlugin{}
}

func (p *VendorsPlugin) ID() string { return "vendors" }

func (p *VendorsPlugin) Models() []interface{} {
	return []interface{}{
		&Vendor{},
	}
}

func (p *VendorsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewVendorService(db)
	handler := NewVendorHandler(svc)

	router.Get("/vendors", handler.List)
	router.Post("/vendors", handler.Create)
	router.Put("/vendors/:id", handler.Update)
	router.Delete("/vendors/:id", handler.Delete)
}
