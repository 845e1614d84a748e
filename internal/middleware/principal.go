package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/richatenany98/wedding-planner/internal/dto"
	"github.com/richatenany98/wedding-planner/internal/models"
	"github.com/richatenany98/wedding-planner/internal/scope"
	"gorm.io/gorm"
)

// ResolvePrincipal turns the validated JWT into a scope.Principal backed
// by the current user row, so a wedding profile assigned after the token
// was minted is still honored. Runs after JWTProtected; handlers never
// read JWT claims directly.
func ResolvePrincipal(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid subject claim",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		scope.SetPrincipal(c, scope.Principal{
			UserID:    user.ID,
			Username:  user.Username,
			Role:      user.Role,
			WeddingID: user.WeddingProfileID,
		})
		return c.Next()
	}
}
