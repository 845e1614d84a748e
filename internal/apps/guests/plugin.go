package guests

import (
	"github.com/gofiber/fiber/v2"
	"github.com/richatenany98/wedding-planner/internal/config"
	"gorm.io/gorm"
)

type GuestsPlugin struct{}

func New() *GuestsPlugin {
	return &GuestsPlugin{}
}

func (p *GuestsPlugin) ID() string { return "guests" }

func (p *GuestsPlugin) Models() []interface{} {
	return []interface{}{
		&Guest{},
	}
}

func (p *GuestsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewGuestService(db)
	handler := NewGuestHandler(svc)

	router.Get("/guests", handler.List)
	router.Post("/guests", handler.Create)
	router.Post("/guests/bulk", handler.BulkCreate)
	router.Get("/guests/export", handler.Export)
	router.Put("/guests/:id", handler.Update)
	router.Delete("/guests/:id", handler.Delete)
}
