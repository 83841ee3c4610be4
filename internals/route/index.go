// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoutes "ciaocraft_backend/internals/features/courses/courses/routes"
	teacherRoutes "ciaocraft_backend/internals/features/courses/teachers/routes"
	collectionRoutes "ciaocraft_backend/internals/features/members/collections/routes"
	memberRoutes "ciaocraft_backend/internals/features/members/members/routes"
	orderRoutes "ciaocraft_backend/internals/features/orders/orders/routes"
	platformRoutes "ciaocraft_backend/internals/features/platform/platform/routes"
	vendorRoutes "ciaocraft_backend/internals/features/vendors/vendors/routes"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	api := app.Group("/api/v1")

	log.Println("[INFO] Setting up MemberRoutes...")
	memberRoutes.MemberRoutes(api, db)

	log.Println("[INFO] Setting up VendorRoutes...")
	vendorRoutes.VendorRoutes(api, db)

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoutes.CourseRoutes(api, db)

	log.Println("[INFO] Setting up TeacherRoutes...")
	teacherRoutes.TeacherRoutes(api, db)

	log.Println("[INFO] Setting up CollectionRoutes...")
	collectionRoutes.CollectionRoutes(api, db)

	log.Println("[INFO] Setting up OrderRoutes...")
	orderRoutes.OrderRoutes(api, db)

	log.Println("[INFO] Setting up PlatformRoutes...")
	platformRoutes.PlatformRoutes(api, db)
}
