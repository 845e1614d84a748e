package budget

import (
	"github.com/gofiber/fiber/v2"
	"github.com/richatenany98/wedding-planner/internal/config"
	"gorm.io/gorm"
)

type BudgetPlugin struct{}

func New() *BudgetPlugin {
	return &BudgetPlugin{}
}

func (p *BudgetPlugin) ID() string { return "budget" }

func (p *BudgetPlugin) Models() []interface{} {
	return []interface{}{
		&BudgetItem{},
	}
}

func (p *BudgetPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewBudgetService(db)
	handler := NewBudgetHandler(svc)

	router.Get("/budget", handler.List)
	router.Post("/budget", handler.Create)
	router.Put("/budget/:id", handler.Update)
	router.Delete("/budget/:id", handler.Delete)
}
