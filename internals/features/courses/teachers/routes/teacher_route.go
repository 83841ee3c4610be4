// file: internals/features/courses/teachers/routes/teacher_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "ciaocraft_backend/internals/features/courses/teachers/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	h := teacherController.NewTeacherController(db)

	teachers := r.Group("/teachers", authMiddleware.VendorAuth())
	{
		teachers.Post("/", h.Create)
		teachers.Get("/", h.ListOwn)
		teachers.Patch("/:teacherId", h.Update)
		teachers.Delete("/:teacherId", h.Delete)
	}
}
