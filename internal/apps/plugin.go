package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/richatenany98/wedding-planner/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every wedding resource module implements.
type Plugin interface {
	// ID returns the unique resource identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts resource routes on the given Fiber group.
	// The group is already prefixed with /api and has JWT plus principal
	// resolution middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
