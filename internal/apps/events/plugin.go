package events

import (
	"github.com/gofiber/fiber/v2"
	"github.com/richatenany98/wedding-planner/internal/config"
	"gorm.io/gorm"
)

type EventsPlugin struct{}

func New() *EventsPlugin {
	return &EventsPlugin{}
}

func (p *EventsPlugin) ID() string { return "events" }

func (p *EventsPlugin) Models() []interface{} {
	return []interface{}{
		&Event{},
	}
}

func (p *EventsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewEventService(db)
	handler := NewEventHandler(svc)

	router.Get("/events", handler.List)
	router.Post("/events", handler.Create)
	router.Put("/events/:id", handler.Update)
	router.Delete("/events/:id", handler.Delete)
}
