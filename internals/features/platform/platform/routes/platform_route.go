// file: internals/features/platform/platform/routes/platform_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	platformController "ciaocraft_backend/internals/features/platform/platform/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
)

func PlatformRoutes(r fiber.Router, db *gorm.DB) {
	h := platformController.NewPlatformController(db)

	platforms := r.Group("/platforms")
	{
		platforms.Get("/:nameEn", h.GetByNameEN)
		platforms.Post("/", authMiddleware.AdminAuth(), h.Create)
	}
}
