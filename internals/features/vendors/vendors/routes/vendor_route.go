// file: internals/features/vendors/vendors/routes/vendor_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vendorController "ciaocraft_backend/internals/features/vendors/vendors/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
	"ciaocraft_backend/internals/middlewares"
)

func VendorRoutes(r fiber.Router, db *gorm.DB) {
	h := vendorController.NewVendorController(db)

	vendors := r.Group("/vendors")
	{
		// Front (publik)
		vendors.Post("/apply", middlewares.RegisterRateLimiter(), h.Apply)
		vendors.Get("/check-account/:account", h.CheckAccount)

		// Back (vendor)
		vendors.Post("/login", middlewares.LoginRateLimiter(), h.Login)
		vendors.Get("/me", authMiddleware.VendorAuth(), h.GetMe)
		vendors.Patch("/me", authMiddleware.VendorAuth(), h.UpdateMe)
		vendors.Patch("/me/password", authMiddleware.VendorAuth(), h.UpdatePassword)

		// Manage (platform admin)
		vendors.Get("/manage", authMiddleware.AdminAuth(), h.ListManage)
		vendors.Patch("/manage/:vendorId", authMiddleware.AdminAuth(), h.ActivateManage)
	}
}
