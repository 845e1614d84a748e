package tasks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/richatenany98/wedding-planner/internal/config"
	"gorm.io/gorm"
)

type TasksPlugin struct{}

func New() *TasksPlugin {
	return &TasksPlugin{}
}

func (p *TasksPlugin) ID() string { return "tasks" }

func (p *TasksPlugin) Models() []interface{} {
	return []interface{}{
		&Task{},
	}
}

func (p *TasksPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewTaskService(db)
	handler := NewTaskHandler(svc)

	router.Get("/tasks", handler.List)
	router.Post("/tasks", handler.Create)
	router.Get("/tasks/export", handler.Export)
	router.Put("/tasks/:id", handler.Update)
	router.Delete("/tasks/:id", handler.Delete)
}
