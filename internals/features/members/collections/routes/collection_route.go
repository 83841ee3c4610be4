// file: internals/features/members/collections/routes/collection_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	collectionController "ciaocraft_backend/internals/features/members/collections/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
)

func CollectionRoutes(r fiber.Router, db *gorm.DB) {
	h := collectionController.NewCollectionController(db)

	collections := r.Group("/collections", authMiddleware.MemberAuth())
	{
		collections.Get("/", h.List)
		collections.Post("/", h.Add)
		collections.Delete("/:collectionId", h.Delete)
	}
}
