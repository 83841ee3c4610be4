// file: internals/features/orders/orders/routes/order_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "ciaocraft_backend/internals/features/orders/orders/controller"
	authMiddleware "ciaocraft_backend/internals/middlewares/auth"
)

func OrderRoutes(r fiber.Router, db *gorm.DB) {
	h := orderController.NewOrderController(db)
	admin := orderController.NewOrderAdminController(db)

	// Front (member)
	orders := r.Group("/orders", authMiddleware.MemberAuth())
	{
		orders.Post("/", h.Create)
		orders.Get("/", h.ListOwn)
		orders.Get("/:orderId", h.GetOne)
		orders.Patch("/:orderId", h.SubmitPaymentReference)
	}

	// Back (vendor)
	adminOrders := r.Group("/admin/orders", authMiddleware.VendorAuth())
	{
		// NB: path statis didaftarkan sebelum /:orderId
		adminOrders.Get("/summary", admin.Summary)
		adminOrders.Get("/payments", admin.Payments)

		adminOrders.Get("/", admin.List)
		adminOrders.Get("/:orderId", admin.GetOne)
		adminOrders.Patch("/:orderId", admin.UpdateStatus)
	}
}
