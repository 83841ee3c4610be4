// file: internals/features/courses/courses/routes/course_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "ciaocraft_backend/internals/features/courses/courses/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	h := courseController.NewCourseController(db)

	courses := r.Group("/courses")
	{
		// Front (publik)
		courses.Get("/search", h.Search)
		courses.Get("/:courseId/detail", h.Detail)

		// Back (vendor)
		courses.Post("/", authMiddleware.VendorAuth(), h.Create)
		courses.Get("/", authMiddleware.VendorAuth(), h.ListOwn)
		courses.Patch("/:courseId", authMiddleware.VendorAuth(), h.Update)
		courses.Delete("/:courseId", authMiddleware.VendorAuth(), h.Delete)

		courses.Post("/:courseId/items", authMiddleware.VendorAuth(), h.AddItem)
		courses.Patch("/:courseId/items/:itemId", authMiddleware.VendorAuth(), h.UpdateItem)
		courses.Delete("/:courseId/items/:itemId", authMiddleware.VendorAuth(), h.DeleteItem)
	}
}
